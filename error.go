package rec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/recfmt/go-rec/token"
)

// Kind discriminates error causes.
type Kind int

const (
	// KindMessage is a general semantic failure described only by text.
	KindMessage Kind = iota
	// KindIO wraps a failure of the underlying byte sink or source.
	KindIO
	// KindBase64 wraps a malformed byte-literal failure. The codec core
	// only encodes base64; the kind exists for the text parser, which
	// shares this error type.
	KindBase64
)

// Error is the error type of this module. Pos is zero when the failure
// has no position in source text.
type Error struct {
	Pos  token.Position
	Kind Kind

	msg string
	err error
}

// NewError builds a message error. If msg starts with a
// "<line>:<col>:" prefix the prefix is parsed into Pos and stripped,
// so an error that crossed a text-only boundary recovers its position.
func NewError(msg string) *Error {
	if pos, rest, ok := splitPos(msg); ok {
		return &Error{Pos: pos, msg: rest}
	}
	return &Error{msg: msg}
}

// Errorf builds a message error from a format string.
func Errorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// IOError wraps a sink or source failure. An *Error passes through
// unchanged so positions survive nested writes.
func IOError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindIO, err: err}
}

// Base64Error wraps a malformed byte-literal failure.
func Base64Error(err error) *Error {
	return &Error{Kind: KindBase64, err: err}
}

// At returns e tagged with pos.
func (e *Error) At(pos token.Position) *Error {
	e.Pos = pos
	return e
}

// Message is the error text without the position prefix.
func (e *Error) Message() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

// Error renders "<line>:<col>: <message>" when the position is known,
// else just the message. NewError parses exactly this shape back.
func (e *Error) Error() string {
	if e.Pos.IsZero() {
		return e.Message()
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message())
}

func (e *Error) Unwrap() error {
	return e.err
}

// splitPos parses a leading "<digits>:<digits>:" prefix. One space
// following the prefix is consumed, matching what Error writes.
func splitPos(msg string) (token.Position, string, bool) {
	c1 := strings.IndexByte(msg, ':')
	if c1 < 0 {
		return token.Position{}, "", false
	}
	c2 := strings.IndexByte(msg[c1+1:], ':')
	if c2 < 0 {
		return token.Position{}, "", false
	}
	c2 += c1 + 1
	line, err := strconv.ParseUint(msg[:c1], 10, 32)
	if err != nil {
		return token.Position{}, "", false
	}
	col, err := strconv.ParseUint(msg[c1+1:c2], 10, 32)
	if err != nil {
		return token.Position{}, "", false
	}
	rest := strings.TrimPrefix(msg[c2+1:], " ")
	return token.Position{Line: int(line), Col: int(col)}, rest, true
}
