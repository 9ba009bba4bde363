package csvframe

import (
	"math"
	"strconv"
	"testing"
	"time"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{30, "30.0"},
		{-0.5, "-0.5"},
		{0.1, "0.1"},
		{1234567.0, "1234567.0"},
		{12345678901234.5, "12345678901234.5"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e17, "1.5e+17"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{2.5e-7, "2.5e-07"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			got := formatFloat(tc.in)
			if got != tc.want {
				t.Fatalf("formatFloat(%v) = %q, want %q", tc.in, got, tc.want)
			}
			back, ok := parseFloat(got)
			if !ok || back != tc.in {
				t.Fatalf("%q parses back to %v, %v", got, back, ok)
			}
		})
	}
}

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "C" }

func TestFormatCell(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "NA"},
		{name: "nan", in: math.NaN(), want: "NA"},
		{name: "int", in: 42, want: "42"},
		{name: "bigUint", in: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "float", in: 2.0, want: "2.0"},
		{name: "true", in: true, want: "True"},
		{name: "false", in: false, want: "False"},
		{name: "string", in: "a,b", want: "a,b"},
		{name: "textMarshaler", in: when, want: "2024-05-06T07:08:09Z"},
		{name: "stringer", in: celsius(21.5), want: "21.5C"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := formatCell(tc.in, "NA")
			if !ok {
				t.Fatalf("formatCell(%v) not renderable", tc.in)
			}
			if got != tc.want {
				t.Fatalf("formatCell(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	if _, ok := formatCell(struct{ X int }{1}, ""); ok {
		t.Fatalf("plain structs must not be renderable")
	}
	if _, ok := formatCell(make(chan int), ""); ok {
		t.Fatalf("channels must not be renderable")
	}
}
