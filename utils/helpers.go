package utils

import "strconv"

// ParseID parses a positive integer record id from a path segment.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
