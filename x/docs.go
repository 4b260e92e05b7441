/*
Package x contains the extensions of the application.

Extensions implement common functionality (Handler, Decorator,
Initializer) and are combined together to construct the application.
Extensions never check signatures themselves. Every handler is given an
Authenticator that reveals which conditions were fulfilled by the
processed transaction.
*/
package x
