package artpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures.
var (
	ErrEmptyURL         = errors.New("request url is not specified")
	ErrInvalidURL       = errors.New("url is not valid")
	ErrFetch            = errors.New("failed to fetch page")
	ErrContentNotFound  = errors.New("article content not found")
	ErrRendererNotFound = errors.New("renderer not found")
	ErrUnknownRenderer  = errors.New("unknown renderer")
	ErrRender           = errors.New("PDF rendering failed")
	ErrConfigParse      = errors.New("failed to parse config")
)

// StatusError is returned when the page responds with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s responded with status code %d", ErrFetch, e.URL, e.StatusCode)
}

// Unwrap makes errors.Is(err, ErrFetch) hold for status errors.
func (e *StatusError) Unwrap() error {
	return ErrFetch
}
