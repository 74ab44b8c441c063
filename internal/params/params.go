package params

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseID parses a positive integer identifier taken from a path segment or
// form value. name is used in the error message.
func ParseID(name, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// QueryID reads ?key= as an identifier.
// URL: /reviews?place_id=3 → QueryID(q, "place_id") → 3
func QueryID(q url.Values, key string) (int64, error) {
	return ParseID(key, q.Get(key))
}

// ParseInt parses a required integer form value such as a rating. Unlike
// ParseID it accepts zero and negatives so range checks can report them.
func ParseInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
