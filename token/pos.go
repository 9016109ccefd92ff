// Package token holds source-position bookkeeping shared between the
// codec core and the text parser.
package token

import "fmt"

// Position locates a point in source text. Line and Col are 1-based;
// the zero Position means the location is unknown.
type Position struct {
	Line int
	Col  int
}

func (p Position) IsZero() bool {
	return p == Position{}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
