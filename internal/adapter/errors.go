package adapter

import (
	"errors"
	"fmt"
)

// ErrMissingCollectorURL indicates that the adapter was constructed without
// a base URL for the collection endpoint.
var ErrMissingCollectorURL = errors.New("collector URL is required")

// StatusError reports a collector response outside the accepted success set
// {200, 201, 202, 204}. Retrieve it with errors.As to read the code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("collector responded with status %d", e.Code)
}
