// Package apiclient is the only code in the client that talks to the vending
// backend over the network.
//
// # Overview
//
// Client wraps every outbound call: it reads the bearer credential from a
// TokenSource, attaches it as an Authorization header when one exists,
// serializes the body (JSON, or form-encoded for login) and decodes the JSON
// reply verbatim into the caller's value. No schema validation is done here;
// each endpoint method knows its response shape.
//
// # Error Handling
//
// Every failure comes back as a *RemoteError. For non-200 replies whose body
// carries a string "detail" field, the message is that string; otherwise it is
// GenericErrorMessage. Transport failures, unreadable bodies and malformed
// JSON are folded into the same type so callers never tell them apart. There
// are no retries.
//
// # See Also
//
//   - Client, New, Do
//   - RemoteError, IsRemote
//   - Body, JSONBody, RawJSON, FormBody
package apiclient
