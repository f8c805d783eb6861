package testkit

import (
	"os"
	"testing"
)

var openSeam = func() string { return "real" }

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &openSeam, func() string { return "fake" })
		if openSeam() != "fake" {
			t.Fatalf("swap did not take effect")
		}
	})
	if openSeam() != "real" {
		t.Fatalf("swap not restored")
	}
}

func TestAssertions(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustContain(t, "123456789 ERR", "ERR")
	MustNotContain(t, "123456789", "AMB")
}

func TestWriteFile(t *testing.T) {
	p := WriteFile(t, "in.txt", []byte("abc"))
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "abc" {
		t.Fatalf("ReadFile = %q, %v", b, err)
	}
}
