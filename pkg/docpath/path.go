package docpath

import (
	"strings"
)

const wildcardSuffix = "[*]"

// segment of a dotted path. A wildcard segment (`hosts[*]`) addresses every
// element of the array stored under key.
type segment struct {
	key      string
	wildcard bool
}

func parse(path string) []segment {
	parts := strings.Split(strings.Trim(path, "."), ".")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		seg := segment{key: part}
		if strings.HasSuffix(part, wildcardSuffix) {
			seg.key = strings.TrimSuffix(part, wildcardSuffix)
			seg.wildcard = true
		}
		segments = append(segments, seg)
	}
	// a trailing wildcard addresses the whole array
	if n := len(segments); n > 0 {
		segments[n-1].wildcard = false
	}
	return segments
}

func isComplexPath(path string) bool {
	return strings.Contains(path, wildcardSuffix)
}
