package codefmt

import (
	"go/types"
	"iter"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is the set of identifiers taken in a scope. Generated identifiers are
// allocated from it so that they never collide.
type NS map[string]struct{}

// NewNS creates a namespace holding the names of the scope.
func NewNS(scope *types.Scope) NS {
	ns := make(NS, scope.Len())
	for _, name := range scope.Names() {
		ns[name] = struct{}{}
	}
	return ns
}

// Reserve takes name. It returns false if name is already taken.
func (ns NS) Reserve(name string) bool {
	if _, taken := ns[name]; taken {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name turns name into an identifier, takes its first free candidate and
// returns it. A nil namespace takes nothing.
func (ns NS) Name(name string) string {
	name = identifier(name)
	if ns == nil {
		return name
	}
	for cand := range Candidates(name) {
		if ns.Reserve(cand) {
			return cand
		}
	}
	panic("unreachable")
}

// identifier drops characters not allowed in identifiers and title-cases the
// word following them: "foo.bar" -> "fooBar".
func identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		panic("codefmt: no identifier in " + strconv.Quote(name))
	}

	title := cases.Title(language.Und, cases.NoLower)
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// Candidates yields name and then numbered alternatives: "x", "x2", "x3" and
// so on. A name ending in a digit is separated from the number: "v1_2".
func Candidates(name string) iter.Seq[string] {
	if name == "" {
		panic("codefmt: empty name")
	}

	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; yield(name + sep + strconv.Itoa(i)); i++ {
		}
	}
}
