package utils

import "strconv"

// ParseID reads a path id. Anything that is not a positive integer within the
// range of the SERIAL id columns is reported as not ok, which callers answer
// as "not found".
func ParseID(raw string) (int, bool) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, false
	}
	return int(id), true
}
