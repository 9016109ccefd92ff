package encode

import (
	"encoding/base64"
	"io"
	"math"
	"strings"

	rec "github.com/recfmt/go-rec"
	"github.com/recfmt/go-rec/num"
	"github.com/recfmt/go-rec/token"
)

// Indent is the glyph and count used for one level of indentation.
// The count is a uint8: the renderer draws from fixed 255-glyph
// tables, so larger counts are unrepresentable by construction.
type Indent struct {
	glyph byte
	count uint8
}

// Spaces indents with n spaces per level.
func Spaces(n uint8) Indent {
	return Indent{glyph: ' ', count: n}
}

// Tabs indents with n tabs per level.
func Tabs(n uint8) Indent {
	return Indent{glyph: '\t', count: n}
}

var (
	spaceGlyphs = strings.Repeat(" ", 255)
	tabGlyphs   = strings.Repeat("\t", 255)
)

func (in Indent) String() string {
	if in.glyph == '\t' {
		return tabGlyphs[:in.count]
	}
	return spaceGlyphs[:in.count]
}

// Formatter writes the primitive and bracketing tokens of the format,
// tracking nesting depth and element separation. Containers indent one
// level per depth until depth exceeds the depth limit, after which
// elements separate with single spaces; a limit of 0 produces
// single-line output.
//
// A Formatter serves one serialization at a time: it owns a private
// scratch buffer for number rendering and provides no locking, so a
// single instance must not be shared across concurrent writes.
type Formatter struct {
	depthLimit uint
	indent     Indent
	color      func(ColorAttr, string) string

	depth    uint
	notFirst bool
	scratch  []byte
}

// NewFormatter returns a Formatter configured by opts. The defaults
// indent everything (no depth limit) by four spaces per level.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		depthLimit: math.MaxUint,
		indent:     Spaces(4),
		scratch:    make([]byte, 0, 64),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// write sends one colorable token.
func (f *Formatter) write(w io.Writer, attr ColorAttr, s string) error {
	if f.color != nil {
		s = f.color(attr, s)
	}
	return writeString(w, s)
}

// writeScratch sends the scratch buffer as one colorable token.
func (f *Formatter) writeScratch(w io.Writer, attr ColorAttr) error {
	if f.color != nil {
		return writeString(w, f.color(attr, string(f.scratch)))
	}
	if _, err := w.Write(f.scratch); err != nil {
		return rec.IOError(err)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return rec.IOError(err)
	}
	return nil
}

// writeSpace is the configured space after "name:" and "key:"; it
// disappears when indentation is off entirely.
func (f *Formatter) writeSpace(w io.Writer) error {
	if f.depthLimit > 0 {
		return writeString(w, " ")
	}
	return nil
}

// writeIndent starts a new element line, or degrades to a single space
// beyond the depth limit.
func (f *Formatter) writeIndent(w io.Writer, depth uint) error {
	if depth > f.depthLimit {
		return writeString(w, " ")
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	unit := f.indent.String()
	for i := uint(0); i < depth; i++ {
		if err := writeString(w, unit); err != nil {
			return err
		}
	}
	return nil
}

// Primitive tokens.

func (f *Formatter) writeBool(w io.Writer, v bool) error {
	if v {
		return f.write(w, BoolColor, "true")
	}
	return f.write(w, BoolColor, "false")
}

func (f *Formatter) writeSigned(w io.Writer, sign num.Sign, mag num.Integer) error {
	// The sign is always written, '+' included.
	f.scratch = append(f.scratch[:0], sign.String()...)
	f.scratch = mag.Append(f.scratch)
	return f.writeScratch(w, NumberColor)
}

func (f *Formatter) writeUnsigned(w io.Writer, mag num.Integer) error {
	f.scratch = mag.Append(f.scratch[:0])
	return f.writeScratch(w, NumberColor)
}

func (f *Formatter) writeFloat(w io.Writer, v num.Float) error {
	f.scratch = v.Append(f.scratch[:0])
	return f.writeScratch(w, NumberColor)
}

func (f *Formatter) writeStr(w io.Writer, v string) error {
	f.scratch = token.AppendQuoted(f.scratch[:0], v)
	return f.writeScratch(w, StringColor)
}

func (f *Formatter) writeChar(w io.Writer, v rune) error {
	f.scratch = token.AppendQuotedRune(f.scratch[:0], v)
	return f.writeScratch(w, CharColor)
}

func (f *Formatter) writeBytes(w io.Writer, v []byte) error {
	f.scratch = append(f.scratch[:0], 'b', '"')
	f.scratch = base64.StdEncoding.AppendEncode(f.scratch, v)
	f.scratch = append(f.scratch, '"')
	return f.writeScratch(w, BytesColor)
}

func (f *Formatter) writeUnit(w io.Writer, name string) error {
	if name != "" {
		return f.write(w, NameColor, name)
	}
	return f.write(w, UnitColor, "()")
}

// Newtype wrappers keep their single value on the wrapper's own line.

func (f *Formatter) beginNewtype(w io.Writer, name string) error {
	if name != "" {
		if err := f.write(w, NameColor, name); err != nil {
			return err
		}
	}
	return f.write(w, SepColor, "(")
}

func (f *Formatter) endNewtype(w io.Writer) error {
	f.notFirst = true
	return f.write(w, SepColor, ")")
}

// Structural bracketing. Each begin/end pair is one nesting level.

func (f *Formatter) beginStruct(w io.Writer, name string) error {
	f.notFirst = false
	f.depth++
	if name != "" {
		if err := f.write(w, NameColor, name); err != nil {
			return err
		}
	}
	return f.write(w, SepColor, "(")
}

func (f *Formatter) beginStructField(w io.Writer, name string) error {
	if err := f.beginElement(w); err != nil {
		return err
	}
	if name != "" {
		if err := f.write(w, FieldColor, name+":"); err != nil {
			return err
		}
		return f.writeSpace(w)
	}
	return nil
}

func (f *Formatter) endStructField() {
	f.notFirst = true
}

func (f *Formatter) endStruct(w io.Writer) error {
	return f.endContainer(w, ")")
}

func (f *Formatter) beginMap(w io.Writer) error {
	f.notFirst = false
	f.depth++
	return f.write(w, SepColor, "{")
}

func (f *Formatter) beginMapKey(w io.Writer) error {
	return f.beginElement(w)
}

func (f *Formatter) endMapKey() {
	f.notFirst = true
}

func (f *Formatter) beginMapValue(w io.Writer) error {
	if err := f.write(w, SepColor, ":"); err != nil {
		return err
	}
	return f.writeSpace(w)
}

func (f *Formatter) endMapValue() {
	f.notFirst = true
}

func (f *Formatter) endMap(w io.Writer) error {
	return f.endContainer(w, "}")
}

func (f *Formatter) beginArray(w io.Writer) error {
	f.notFirst = false
	f.depth++
	return f.write(w, SepColor, "[")
}

func (f *Formatter) beginArrayMember(w io.Writer) error {
	return f.beginElement(w)
}

func (f *Formatter) endArrayMember() {
	f.notFirst = true
}

func (f *Formatter) endArray(w io.Writer) error {
	return f.endContainer(w, "]")
}

// beginElement separates the element from its predecessor and indents
// it.
func (f *Formatter) beginElement(w io.Writer) error {
	if f.notFirst {
		if err := f.write(w, SepColor, ","); err != nil {
			return err
		}
	}
	return f.writeIndent(w, f.depth)
}

// endContainer closes a bracket pair. A non-empty multi-line container
// gets a trailing comma and the bracket on its own line; past the
// depth limit the bracket follows a single space.
func (f *Formatter) endContainer(w io.Writer, bracket string) error {
	inner := f.depth
	f.depth--
	if f.notFirst {
		if inner <= f.depthLimit {
			if err := f.write(w, SepColor, ","); err != nil {
				return err
			}
			if err := f.writeIndent(w, f.depth); err != nil {
				return err
			}
		} else if err := writeString(w, " "); err != nil {
			return err
		}
	}
	f.notFirst = true
	return f.write(w, SepColor, bracket)
}
