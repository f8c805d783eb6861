package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeFormat, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooLarge, http.StatusRequestEntityTooLarge},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeCanceled, http.StatusRequestTimeout},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeFormat.String() != "format" || ErrorCodeDuplicateKey.String() != "duplicate_key" {
		t.Fatalf("unexpected names %q %q", ErrorCodeFormat, ErrorCodeDuplicateKey)
	}
	if got := ErrorCode(500).String(); got != "code(500)" {
		t.Fatalf("out of range name = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := Formatf("image has %d lines", 2)
	if CodeOf(e1) != ErrorCodeFormat || e1.Error() != "image has 2 lines" {
		t.Fatalf("Formatf = %v (%v)", e1, CodeOf(e1))
	}

	src := stderrs.New("root")
	e2 := Wrapf(src, ErrorCodeDB, "insert %s", "results")
	if want := "insert results: root"; e2.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e2.Error(), want)
	}
	if stderrs.Unwrap(e2) != src {
		t.Fatalf("Wrap did not keep orig")
	}

	e3 := WithOp(WithField(Validationf("nine digits required"), "digits"), "checksum")
	got, ok := As(e3)
	if !ok || got.Field() != "digits" || got.Op() != "checksum" || got.Code() != ErrorCodeValidation {
		t.Fatalf("mutators failed: %+v", got)
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField should leave foreign errors alone")
	}

	if w := WireFrom(e2); w.Code != ErrorCodeDB || w.Message != "insert results" {
		t.Fatalf("WireFrom(ours) = %+v", w)
	}
	if w := WireFrom(src); w.Code != ErrorCodeUnknown || w.Message != "root" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st, w := HTTP(e1); st != http.StatusUnprocessableEntity || w.Code != ErrorCodeFormat {
		t.Fatalf("HTTP(format) = %d %+v", st, w)
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if Root(deep) != src {
		t.Fatalf("Root() failed")
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil || WrapIf(src, ErrorCodeDB, "x") == nil {
		t.Fatalf("WrapIf mismatch")
	}
	if !IsCode(ErrNotFound, ErrorCodeNotFound) || IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("IsCode mismatch")
	}
}

func TestCodeOf_ContextErrors(t *testing.T) {
	if CodeOf(context.Canceled) != ErrorCodeCanceled {
		t.Fatalf("canceled not mapped")
	}
	if CodeOf(fmt.Errorf("scan: %w", context.DeadlineExceeded)) != ErrorCodeCanceled {
		t.Fatalf("wrapped deadline not mapped")
	}
}

func TestSugarCodes(t *testing.T) {
	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(TooLargef("x"), ErrorCodeTooLarge) ||
		!IsCode(DBf("x"), ErrorCodeDB) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}
}
