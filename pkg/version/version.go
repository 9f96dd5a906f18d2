// Package version provides journal format version parsing and
// compatibility checks.
//
// Every journal session header carries the format version it was
// written with. Readers refuse files whose major version differs from
// their own; minor revisions only add optional event fields and stay
// readable.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the journal format version written by this library.
const Current = "1.0"

// FormatVersion represents a parsed "major.minor" journal format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(majorStr, 10, 16)
	if err != nil || majorStr == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(minorStr, 10, 16)
	if err != nil || minorStr == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}
