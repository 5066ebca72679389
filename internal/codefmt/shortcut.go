package codefmt

import "go/token"

// Sprintf formats with the [Formatter] of the package.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return formatterOf(pkger).Sprintf(format, args...)
}

// Errorf is [Formatter.Errorf] with the formatter of the package.
func Errorf(pkger Pkger, at Poser, format string, args ...any) error {
	return formatterOf(pkger).Errorf(at, format, args...)
}

type rawPos token.Pos

func (p rawPos) Pos() token.Pos { return token.Pos(p) }

// Pos wraps a raw position as a [Poser].
func Pos(pos token.Pos) Poser { return rawPos(pos) }
