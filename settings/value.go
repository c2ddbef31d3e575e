// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the type of a Value.
type Kind int

// Value kinds.
const (
	String Kind = iota
	Bool
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A Value is a typed entry value. The zero value is the empty string.
// Values are comparable with ==.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
}

// StringValue returns a String value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

// BoolValue returns a Bool value.
func BoolValue(b bool) Value {
	return Value{kind: Bool, b: b}
}

// IntValue returns an Int value.
func IntValue(i int64) Value {
	return Value{kind: Int, i: i}
}

// FloatValue returns a Float value.
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns v's boolean value. It panics if v's kind is not Bool.
func (v Value) Bool() bool {
	v.mustBe("Bool", Bool)
	return v.b
}

// Int returns v's integer value. It panics if v's kind is not Int.
func (v Value) Int() int64 {
	v.mustBe("Int", Int)
	return v.i
}

// Float returns v's floating point value. It panics if v's kind is not Float.
func (v Value) Float() float64 {
	v.mustBe("Float", Float)
	return v.f
}

func (v Value) mustBe(method string, k Kind) {
	if v.kind != k {
		panic("settings: call of Value." + method + " on " + v.kind.String() + " Value")
	}
}

// String returns the canonical text of v as it is written to a file. String
// values are returned verbatim.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		if v.b {
			return "True"
		}
		return "False"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !math.IsInf(v.f, 0) && !math.IsNaN(v.f) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return v.s
	}
}

// Decode converts the text of an entry value into a Value. Nil options are
// treated as DefaultOptions.
//
// Text equal to "true" or "false" (in any case) is a Bool. Text containing a
// '.' is tried as a Float, other text as an Int. If a conversion is disabled
// in opts or the text does not parse, Decode falls through to the next one
// and finally returns a String holding the text verbatim.
func Decode(text string, opts *Options) Value {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.ParseBool {
		switch strings.ToLower(text) {
		case "true":
			return BoolValue(true)
		case "false":
			return BoolValue(false)
		}
	}
	num := strings.TrimSpace(text)
	hasDot := strings.Contains(num, ".")
	if opts.ParseFloat && hasDot && isDecimal(num) {
		if f, err := strconv.ParseFloat(num, 64); err == nil {
			return FloatValue(f)
		}
	}
	if opts.ParseInt && !hasDot {
		if i, err := strconv.ParseInt(num, 10, 64); err == nil {
			return IntValue(i)
		}
	}
	return StringValue(text)
}

// isDecimal rejects the hexadecimal and underscore forms that
// strconv.ParseFloat accepts.
func isDecimal(s string) bool {
	return !strings.ContainsAny(s, "xX_")
}

var listSeparator = regexp.MustCompile(`, |,`)

// SplitList splits a comma-separated list such as "a, b,c". A single space
// after each comma is removed. An empty string yields an empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return listSeparator.Split(s, -1)
}
