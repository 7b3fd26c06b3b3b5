package utils

import "net/http"

// HTTPHelper provides HTTP utility functions.
type HTTPHelper struct {
	userAgent string
}

// NewHTTPHelper creates a new HTTP helper with the given user agent.
func NewHTTPHelper(userAgent string) *HTTPHelper {
	return &HTTPHelper{userAgent: userAgent}
}

// BuildHeaders creates HTTP headers with defaults.
func (h *HTTPHelper) BuildHeaders(customHeaders map[string]string) http.Header {
	headers := http.Header{}

	// Add default headers
	headers.Add("User-Agent", h.userAgent)
	headers.Add("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	// Add custom headers
	for key, value := range customHeaders {
		headers.Add(key, value)
	}

	return headers
}
