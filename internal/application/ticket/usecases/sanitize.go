package usecases

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizePolicy strips all HTML from user-supplied free text before it is
// persisted or echoed back.
var sanitizePolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}
