package servicedesk

import "fmt"

// RequestError reports a backend response that carried a non-success
// status. Body holds the response text for mutating calls, where the
// backend explains validation failures.
type RequestError struct {
	Op     string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
}

// DecodeError reports a success response whose body could not be parsed
// into the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding backend response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
