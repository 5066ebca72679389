// Package casing splits identifiers into words and rejoins them in other
// styles. It is used to derive enum strings from member names.
package casing

import (
	"strings"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Split splits an identifier into words at transitions between lowercase,
// uppercase, digits and other characters:
//   - "getID" -> "get" + "ID"
//   - "JSONParser" -> "JSON" + "Parser"
//   - "send_nowait" -> "send" + "_" + "nowait"
//   - "file2name" -> "file" + "2" + "name"
//   - "ÉtatInitial" -> "État" + "Initial"
//
// Separator runs are kept as words so that joining the result restores the
// input.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	return camelcase.Split(s)
}

// join rejoins the words of s with sep, dropping separator runs.
func join(s, sep string) string {
	words := Split(s)
	kept := words[:0]
	for _, w := range words {
		if strings.Trim(w, "_-") == "" {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, sep)
}

// Snake joins the words of s with underscores without changing letter case.
//
//	Snake("InProgress") == "In_Progress"
func Snake(s string) string { return join(s, "_") }

// Kebab joins the words of s with hyphens without changing letter case.
//
//	Kebab("InProgress") == "In-Progress"
func Kebab(s string) string { return join(s, "-") }

// Title capitalizes the first letter of each word in s and lowercases the
// rest.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
