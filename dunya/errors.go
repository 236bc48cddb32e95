package dunya

import "fmt"

// HTTPError reports a non-success response from the API.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected response %s", e.Status)
	}
	return fmt.Sprintf("unexpected response %s: %s", e.Status, e.Body)
}
