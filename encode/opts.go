package encode

// Option configures a Formatter.
type Option func(*Formatter)

// DepthLimit stops indentation below depth d. Containers nested deeper
// than d render on the line they start on, with single spaces between
// elements. DepthLimit(0) yields single-line output.
func DepthLimit(d uint) Option {
	return func(f *Formatter) {
		f.depthLimit = d
	}
}

// WithIndent sets the per-level indentation.
func WithIndent(in Indent) Option {
	return func(f *Formatter) {
		f.indent = in
	}
}

// WithColors enables ANSI coloring of output tokens.
func WithColors(c *Colors) Option {
	return func(f *Formatter) {
		if c == nil {
			f.color = nil
			return
		}
		f.color = c.sprint
	}
}
