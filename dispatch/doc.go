/*
Package dispatch implements the shared request contract for all resource
Functions.

# Flow

Every request follows the same path:

 1. No method segment → METHOD_NOT_FOUND, the handler is never reached.
 2. For auth-gated Functions, the "Authentication: JWT <token>" header is
    parsed; the token is resolved against each registered TokenResolver in
    order. A malformed header or a failed verification hands the handler a
    nil principal rather than failing the request.
 3. The Function's On method runs the resource logic and returns an
    envelope. Unrecognized methods answer METHOD_NOT_SUPPORTED via
    RequireMethod.

Functions declared without auth never inspect the Authentication header.

# Required fields

Handlers validate inputs with Require, one call per field in a fixed order:

	if e := dispatch.Require(body, "username"); e != nil {
		return e
	}

The first missing field decides the error message.
*/
package dispatch
