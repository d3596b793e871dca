package mca

import (
	"path/filepath"
	"regexp"
	"strconv"
)

var filenamePattern = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mca$`)

// ParseFilename extracts the region coordinates from the last path
// component of path, matching the conventional "r.<x>.<z>.mca" name. ok
// is false when the name doesn't match, in which case a Region built from
// it should leave X, Z, and HasPosition unset.
func ParseFilename(path string) (x, z int, ok bool) {
	m := filenamePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(m[1])
	z, errZ := strconv.Atoi(m[2])
	if errX != nil || errZ != nil {
		return 0, 0, false
	}
	return x, z, true
}

// WithFilename sets r's X, Z, and HasPosition from path if it matches the
// conventional region-file naming pattern, leaving r unchanged otherwise.
func (r *Region) WithFilename(path string) *Region {
	if x, z, ok := ParseFilename(path); ok {
		r.X, r.Z = x, z
		r.HasPosition = true
	}
	return r
}
