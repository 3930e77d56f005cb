package adapters

import (
	"context"
	"net/http"
)

// HTTPResponse represents the response from the conversions endpoint.
type HTTPResponse struct {
	OK     bool
	Status int
	Body   []byte
}

// HTTPAdapter is an interface for dispatching built requests.
// Implement this interface to use custom HTTP clients.
type HTTPAdapter interface {
	// Send dispatches a request built by the component.
	//
	// Parameters:
	//   - ctx: Cancellation and deadline for the call
	//   - req: The request description to execute
	//   - clientHeaders: Headers of the original caller, sent along only
	//     when req.ForwardClientHeaders is set
	//
	// Returns HTTP response or error.
	Send(ctx context.Context, req *Request, clientHeaders http.Header) (*HTTPResponse, error)
}
