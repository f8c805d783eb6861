package decoder

import (
	"strings"
	"testing"

	"bankocr/internal/core/glyph"
	perr "bankocr/internal/platform/errors"
)

// kata sample for 123456789
var sample = []string{
	"    _  _     _  _  _  _  _ ",
	"  | _| _||_||_ |_   ||_||_|",
	"  ||_  _|  | _||_|  ||_| _|",
}

func mustImage(t *testing.T, lines []string) Image {
	t.Helper()
	img, err := NewImage(lines)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

func TestDecode_Sample(t *testing.T) {
	n, err := Decode(mustImage(t, sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.String() != "123456789" || n.Unknowns() != 0 {
		t.Fatalf("got %s (%d unknown)", n, n.Unknowns())
	}
	ds, ok := n.Digits()
	if !ok || len(ds) != Positions || ds[0] != 1 || ds[8] != 9 {
		t.Fatalf("Digits() = %v,%v", ds, ok)
	}
}

func TestDecode_RoundTripEveryDigit(t *testing.T) {
	for d := 0; d < glyph.Digits; d++ {
		s := strings.Repeat(string(rune('0'+d)), Positions)
		img, err := Render(s)
		if err != nil {
			t.Fatalf("Render(%s): %v", s, err)
		}
		n, err := Decode(img)
		if err != nil {
			t.Fatalf("Decode(%s): %v", s, err)
		}
		for i, sym := range n {
			if got, ok := sym.Digit(); !ok || got != d {
				t.Fatalf("digit %d position %d decoded as %v", d, i, sym)
			}
		}
		cells, _ := Split(img)
		want, _ := glyph.Canonical(d)
		if cells[4] != want {
			t.Fatalf("digit %d glyph did not survive compose/split", d)
		}
	}
}

func TestDecode_UnknownPositions(t *testing.T) {
	lines := []string{sample[0], sample[1], sample[2]}
	// drop the bottom stroke of the last 9 and the bar of the first 1
	lines[2] = lines[2][:25] + " " + lines[2][26:]
	lines[1] = "   " + lines[1][3:]
	n, err := Decode(mustImage(t, lines))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.String() != "?2345678?" || n.Unknowns() != 2 {
		t.Fatalf("got %s (%d unknown)", n, n.Unknowns())
	}
	if _, ok := n.Digits(); ok {
		t.Fatalf("Digits() should fail with unknowns")
	}
	if n[0] != Unknown || n[0].Rune() != Placeholder {
		t.Fatalf("position 0 = %v", n[0])
	}
}

func TestGeometryErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"two lines", sample[:2]},
		{"four lines", append(append([]string{}, sample...), sample[0])},
		{"ragged", []string{sample[0], sample[1][:24], sample[2]}},
		{"not multiple of three", []string{"    ", "    ", "    "}},
		{"empty", []string{"", "", ""}},
	}
	for _, c := range cases {
		if _, err := NewImage(c.lines); !perr.IsCode(err, perr.ErrorCodeFormat) {
			t.Fatalf("%s: want format error, got %v", c.name, err)
		}
	}

	// multiple of three but not nine digits: Cells works, Decode refuses
	short := mustImage(t, []string{sample[0][:6], sample[1][:6], sample[2][:6]})
	cells, err := Cells(short)
	if err != nil || len(cells) != 2 {
		t.Fatalf("Cells(short) = %d,%v", len(cells), err)
	}
	if _, err := Decode(short); !perr.IsCode(err, perr.ErrorCodeFormat) {
		t.Fatalf("Decode(short): want format error, got %v", err)
	}

	bad := mustImage(t, []string{sample[0], strings.Replace(sample[1], "|", "#", 1), sample[2]})
	if _, err := Decode(bad); !perr.IsCode(err, perr.ErrorCodeFormat) {
		t.Fatalf("Decode(bad alphabet): want format error, got %v", err)
	}
	if _, err := Decode(Image{}); !perr.IsCode(err, perr.ErrorCodeFormat) {
		t.Fatalf("Decode(zero image): want format error, got %v", err)
	}
}

func TestRender_RejectsNonDigits(t *testing.T) {
	if _, err := Render("12a"); !perr.IsCode(err, perr.ErrorCodeFormat) {
		t.Fatalf("want format error, got %v", err)
	}
	if _, err := Render(""); err == nil {
		t.Fatalf("empty render should fail")
	}
}

func TestFromDigits(t *testing.T) {
	n := FromDigits([Positions]int{4, 9, 0, 0, 6, 7, 7, 1, 5})
	if n.String() != "490067715" {
		t.Fatalf("got %s", n)
	}
}
