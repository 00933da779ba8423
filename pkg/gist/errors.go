package gist

import (
	"fmt"
	"net/http"

	"github.com/google/go-github/v43/github"
	"github.com/pkg/errors"
)

// RemoteError is returned for any failed Gist API call: a non-2xx response
// or a transport failure, in which case StatusCode is zero.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gist: %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("gist: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a RemoteError for a missing gist.
func IsNotFound(err error) bool {
	var rerr *RemoteError
	return errors.As(err, &rerr) && rerr.StatusCode == http.StatusNotFound
}

func remoteError(op string, resp *github.Response, err error) error {
	rerr := &RemoteError{Op: op, Err: err}
	if resp != nil && resp.Response != nil {
		rerr.StatusCode = resp.StatusCode
	}
	var gerr *github.ErrorResponse
	if errors.As(err, &gerr) {
		rerr.Body = gerr.Message
		if gerr.Response != nil {
			rerr.StatusCode = gerr.Response.StatusCode
		}
	} else if rerr.StatusCode != 0 {
		rerr.Body = err.Error()
	}
	return rerr
}
