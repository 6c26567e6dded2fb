// Package guid validates the GUID identifiers the Web API uses for
// entities and query parameters.
package guid

import (
	"github.com/google/uuid"
)

// IsValid reports whether value is a canonical-form GUID: parseable and
// identical to its normalized rendering. Uppercase or bracketed variants
// the parser would accept are rejected, because the API echoes ids back
// in canonical lowercase form and callers compare them as strings.
func IsValid(value string) bool {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return parsed.String() == value
}
