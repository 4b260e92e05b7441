/*
Package app contains the pieces needed to turn a set of extensions into a
running application: a router dispatching messages to their handlers,
decorator chains, genesis loading and the block processing loop operating
on a cacheable store.
*/
package app
