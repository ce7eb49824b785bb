package configuration

import (
	"strconv"
	"strings"
)

// ClassVersion packs a class-file major and minor version as major<<16 | minor
type ClassVersion uint32

// Known class-file versions
const (
	ClassVersion1_0 ClassVersion = 45<<16 | 3
	ClassVersion1_2 ClassVersion = 46 << 16
	ClassVersion1_3 ClassVersion = 47 << 16
	ClassVersion1_4 ClassVersion = 48 << 16
	ClassVersion1_5 ClassVersion = 49 << 16
	ClassVersion1_6 ClassVersion = 50 << 16
	ClassVersion1_7 ClassVersion = 51 << 16
	ClassVersion1_8 ClassVersion = 52 << 16

	// MaxJavaRelease is the newest release accepted by ParseClassVersion
	MaxJavaRelease = 25
)

// UnknownClassVersion is returned for unrecognized version strings
const UnknownClassVersion ClassVersion = 0

// Major returns the class-file major version
func (v ClassVersion) Major() int {
	return int(v >> 16)
}

// Minor returns the class-file minor version
func (v ClassVersion) Minor() int {
	return int(v & 0xffff)
}

// String renders the release name ("1.8", "11"), or "" for unknown versions
func (v ClassVersion) String() string {
	switch {
	case v == UnknownClassVersion:
		return ""
	case v == ClassVersion1_0:
		return "1.0"
	case v.Major() >= 46 && v.Major() <= 52:
		return "1." + strconv.Itoa(v.Major()-44)
	default:
		return strconv.Itoa(v.Major() - 44)
	}
}

// ParseClassVersion maps a release string to a class version. Accepted:
// "1.0" and "1.1" (45.3), "1.2" to "1.8", "5" to "8" and "5.0" style
// aliases, and "9" up to MaxJavaRelease with an optional ".0". Anything
// else returns UnknownClassVersion and ok == false; callers decide how to
// report it.
func ParseClassVersion(s string) (ClassVersion, bool) {
	s = strings.TrimSpace(s)
	if s == "1.0" || s == "1.1" {
		return ClassVersion1_0, true
	}
	release := 0
	switch {
	case strings.HasPrefix(s, "1."):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "1."))
		if err != nil || n < 2 || n > 8 {
			return UnknownClassVersion, false
		}
		release = n
	default:
		n, err := strconv.Atoi(strings.TrimSuffix(s, ".0"))
		if err != nil || n < 5 || n > MaxJavaRelease {
			return UnknownClassVersion, false
		}
		release = n
	}
	return ClassVersion(release+44) << 16, true
}
