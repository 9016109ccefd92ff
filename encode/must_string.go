package encode

import (
	"github.com/recfmt/go-rec/model"
)

// MustString renders src with the default configuration, panicking on
// error. Intended for tests and debugging.
func MustString(src model.Marshaler, opts ...Option) string {
	s, err := Marshal(src, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
