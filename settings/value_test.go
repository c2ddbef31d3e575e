// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valueComparer = cmp.Comparer(func(v1, v2 Value) bool {
	return v1 == v2
})

func TestDecode(t *testing.T) {
	tests := []struct {
		text string
		want Value
	}{
		{text: "True", want: BoolValue(true)},
		{text: "true", want: BoolValue(true)},
		{text: "FALSE", want: BoolValue(false)},
		{text: "509", want: IntValue(509)},
		{text: "-12", want: IntValue(-12)},
		{text: "1.989", want: FloatValue(1.989)},
		{text: "12.345", want: FloatValue(12.345)},
		{text: "12.5!", want: StringValue("12.5!")},
		{text: "12.345!", want: StringValue("12.345!")},
		{text: "hello", want: StringValue("hello")},
		{text: "value with multiple words!", want: StringValue("value with multiple words!")},
		{text: "", want: StringValue("")},
		{text: "1e5", want: StringValue("1e5")},
		{text: "0x1.8p1", want: StringValue("0x1.8p1")},
		{text: "1.2.3", want: StringValue("1.2.3")},
		{text: "99999999999999999999", want: StringValue("99999999999999999999")},
		{text: " 42", want: IntValue(42)},
		{text: "yes", want: StringValue("yes")},
	}
	for _, test := range tests {
		got := Decode(test.text, nil)
		if got != test.want {
			t.Errorf("Decode(%q, nil) = %v (%v); want %v (%v)", test.text, got, got.Kind(), test.want, test.want.Kind())
		}
	}
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts *Options
		want Value
	}{
		{
			name: "NoBool",
			text: "True",
			opts: &Options{ParseInt: true, ParseFloat: true},
			want: StringValue("True"),
		},
		{
			name: "NoInt",
			text: "509",
			opts: &Options{ParseBool: true, ParseFloat: true},
			want: StringValue("509"),
		},
		{
			name: "NoFloat",
			text: "1.5",
			opts: &Options{ParseBool: true, ParseInt: true},
			want: StringValue("1.5"),
		},
		{
			name: "NoneEnabled",
			text: "false",
			opts: &Options{},
			want: StringValue("false"),
		},
		{
			name: "FloatDisabledDoesNotFallToInt",
			text: "3.0",
			opts: &Options{ParseInt: true},
			want: StringValue("3.0"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Decode(test.text, test.opts); got != test.want {
				t.Errorf("Decode(%q, ...) = %v (%v); want %v (%v)", test.text, got, got.Kind(), test.want, test.want.Kind())
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{v: BoolValue(true), want: "True"},
		{v: BoolValue(false), want: "False"},
		{v: IntValue(590), want: "590"},
		{v: IntValue(-3), want: "-3"},
		{v: FloatValue(1.989), want: "1.989"},
		{v: FloatValue(2), want: "2.0"},
		{v: FloatValue(1e21), want: "1000000000000000000000.0"},
		{v: FloatValue(math.Inf(1)), want: "+Inf"},
		{v: StringValue(" spaced "), want: " spaced "},
		{v: Value{}, want: ""},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("%v value String() = %q; want %q", test.v.Kind(), got, test.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	values := []Value{
		BoolValue(true),
		BoolValue(false),
		IntValue(0),
		IntValue(-77),
		FloatValue(0.5),
		FloatValue(3),
		StringValue("hello there"),
	}
	for _, v := range values {
		if got := Decode(v.String(), nil); got != v {
			t.Errorf("Decode(%q) = %v (%v); want %v (%v)", v.String(), got, got.Kind(), v, v.Kind())
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if got := BoolValue(true).Bool(); !got {
		t.Error("BoolValue(true).Bool() = false")
	}
	if got := IntValue(7).Int(); got != 7 {
		t.Errorf("IntValue(7).Int() = %d; want 7", got)
	}
	if got := FloatValue(0.25).Float(); got != 0.25 {
		t.Errorf("FloatValue(0.25).Float() = %g; want 0.25", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("StringValue(\"x\").Int() did not panic")
		}
	}()
	StringValue("x").Int()
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		s    string
		want []string
	}{
		{s: "item1, item2,item3,item4", want: []string{"item1", "item2", "item3", "item4"}},
		{s: "single", want: []string{"single"}},
		{s: "", want: []string{}},
		{s: "a,  b", want: []string{"a", " b"}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, SplitList(test.s)); diff != "" {
			t.Errorf("SplitList(%q) (-want +got):\n%s", test.s, diff)
		}
	}
}
