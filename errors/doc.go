/*
Package errors implements the error model shared by all stakevault packages.

Every error returned by a handler should wrap one of the registered root
errors, so that callers can test the kind of failure with the Is method and
clients receive a stable numeric code.

Extensions that need their own root errors register them with
Register(code, description) during package initialization. Codes below 100
belong to this package, 100-199 to the framework packages and everything from
1000 up is free for extensions.

Create errors at the point of failure with ErrXyz.New("...") or
errors.Wrap(err, "...") so a stack trace is attached. Only the innermost wrap
records the trace.

	%s  prints the error message
	%+v prints the message followed by the stack trace
*/
package errors
