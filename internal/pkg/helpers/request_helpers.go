package helpers

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseID parses a positive integer path parameter
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// WithMessage appends a status message as the "message" query parameter
func WithMessage(path, message string) string {
	if message == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "message=" + url.QueryEscape(message)
}

// SafeRedirect returns next when it is a local absolute path, otherwise fallback
func SafeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}
