package codefmt

import (
	"go/token"
)

// CodeError is an error located in the source code of the user.
type CodeError struct {
	// Msg is the message without the position.
	Msg string

	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Pos returns the position of the error. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the erroneous node. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

func (e *CodeError) Error() string {
	if !e.pos.IsValid() || e.fset == nil {
		return e.Msg
	}
	return position(e.fset.Position(e.pos)) + ": " + e.Msg
}

// Errorf returns a [CodeError] at the node. A nil node leaves the error
// unpositioned. Errors cannot be wrapped in a CodeError.
func (f Formatter) Errorf(at Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: CodeError cannot wrap error")
		}
	}

	e := &CodeError{Msg: f.Sprintf(format, args...), fset: f.fset}
	if at != nil {
		e.pos = at.Pos()
		if ender, ok := at.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}
