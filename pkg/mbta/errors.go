package mbta

import (
	"errors"
	"fmt"
	"net/http"
)

// GatewayError is returned by every Client call that did not produce data:
// transport failures, non-2xx statuses and undecodable bodies.
type GatewayError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("mbta %s: unexpected status %d %s", e.Operation, e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("mbta %s: %v", e.Operation, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) bool {
	var gatewayError *GatewayError
	return errors.As(err, &gatewayError)
}
