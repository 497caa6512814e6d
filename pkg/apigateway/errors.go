package apigateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("apigateway: not authenticated")
	ErrMalformedBody   = errors.New("apigateway: malformed response body")
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Body       any // decoded JSON body, or the raw text when it is not JSON
}

func (e *APIError) Error() string {
	return e.Message
}

// BodyText renders Body for display: strings as-is, anything else as JSON.
func (e *APIError) BodyText() string {
	switch b := e.Body.(type) {
	case nil:
		return ""
	case string:
		return b
	default:
		out, err := json.Marshal(b)
		if err != nil {
			return ""
		}
		return string(out)
	}
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{StatusCode: status, Message: http.StatusText(status)}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return e
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		e.Body = string(trimmed)
		return e
	}
	e.Body = decoded

	if m, ok := decoded.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s, ok := m[key].(string); ok && s != "" {
				e.Message = s
				break
			}
		}
	}
	return e
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
