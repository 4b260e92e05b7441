/*
Package weave defines the interfaces shared by every stakevault package:
storage, transactions, handlers, decorators, conditions and the request
context.

Extensions under x/ only talk to each other through these interfaces, so a
handler can be tested with an in-memory store and a fake authenticator and
then be mounted unchanged into the application stack.
*/
package weave
