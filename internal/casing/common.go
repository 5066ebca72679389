package casing

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// CommonPrefix returns the longest common prefix of ss in bytes.
func CommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	// After sorting, the common prefix of the first and the last string is
	// the common prefix of all.
	sorted := slices.Sorted(slices.Values(ss))
	first, last := sorted[0], sorted[len(sorted)-1]

	n := 0
	for n < len(first) && first[n] == last[n] {
		n++
	}
	for n < len(first) && !utf8.RuneStart(first[n]) {
		n--
	}
	return first[:n]
}

// CommonWordPrefix returns the longest common prefix of ss made of whole
// words as detected by [Split].
func CommonWordPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	prefix := Split(ss[0])
	for _, s := range ss[1:] {
		words := Split(s)
		n := 0
		for n < len(prefix) && n < len(words) && prefix[n] == words[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return strings.Join(prefix, "")
}
