package encode

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorAttr names a class of output token.
type ColorAttr int

const (
	NameColor ColorAttr = iota
	FieldColor
	SepColor
	StringColor
	NumberColor
	BoolColor
	CharColor
	BytesColor
	UnitColor
)

// Colors maps token classes to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[FieldColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[StringColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NumberColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[BoolColor] = color.CyanString
	colors.Map[CharColor] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[BytesColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[UnitColor] = color.RGB(168, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// TerminalColors returns the default palette when f is a terminal, nil
// otherwise.
func TerminalColors(f *os.File) *Colors {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) sprint(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
