package gomap

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStructTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"rename", "field=age", map[string]string{"field": "age"}},
		{"flag", "omit", map[string]string{"omit": ""}},
		{"combined", "field=age,optional", map[string]string{"field": "age", "optional": ""}},
		{"spaces", " field=age , optional ", map[string]string{"field": "age", "optional": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStructTag(tt.tag)
			if err != nil {
				t.Fatalf("ParseStructTag() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStructTag() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldInfo(t *testing.T) {
	type sample struct {
		Plain   int
		Renamed int `rec:"field=renamed"`
		Skipped int `rec:"-"`
		Maybe   *int `rec:"optional"`
	}
	typ := reflect.TypeOf(sample{})

	info, err := fieldInfo(typ.Field(0))
	if err != nil || info.OutName != "Plain" || info.Omit || info.Optional {
		t.Errorf("Plain info = %+v, err = %v", info, err)
	}
	info, err = fieldInfo(typ.Field(1))
	if err != nil || info.OutName != "renamed" {
		t.Errorf("Renamed info = %+v, err = %v", info, err)
	}
	info, err = fieldInfo(typ.Field(2))
	if err != nil || !info.Omit {
		t.Errorf("Skipped info = %+v, err = %v", info, err)
	}
	info, err = fieldInfo(typ.Field(3))
	if err != nil || !info.Optional {
		t.Errorf("Maybe info = %+v, err = %v", info, err)
	}
}
