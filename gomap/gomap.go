package gomap

import (
	"github.com/recfmt/go-rec/encode"
	"github.com/recfmt/go-rec/model"
)

// Source wraps a Go value as a model.Marshaler. Conversion happens
// when the source is marshaled.
func Source(v any) model.Marshaler {
	return model.MarshalerFunc(func(w model.Writer) error {
		val, err := ToValue(v)
		if err != nil {
			return err
		}
		return val.MarshalRec(w)
	})
}

// Marshal renders a Go value as text.
func Marshal(v any, opts ...encode.Option) (string, error) {
	return encode.Marshal(Source(v), opts...)
}
