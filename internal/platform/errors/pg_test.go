package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeConflict},
		{"40P01", ErrorCodeConflict},
		{"55P03", ErrorCodeConflict},
		{"57P03", ErrorCodeUnavailable},
		{"57P01", ErrorCodeUnavailable},
		{"42P01", ErrorCodeDB},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil || FromPostgresf(nil, "x %d", 1) != nil {
		t.Fatalf("nil should pass through")
	}
	if err := FromPostgres(pg("23505"), "insert result"); !IsCode(err, ErrorCodeDuplicateKey) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	wrapped := fmt.Errorf("exec: %w", pg("42P01"))
	if e, ok := ExtractPgError(wrapped); !ok || e.Code != "42P01" {
		t.Fatalf("ExtractPgError through fmt wrap failed")
	}
	if err := FromPostgresf(wrapped, "list %s", "batch"); !IsCode(err, ErrorCodeDB) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if err := FromPostgres(context.Canceled, "list"); !IsCode(err, ErrorCodeCanceled) {
		t.Fatalf("canceled code = %v", CodeOf(err))
	}
	if err := FromPostgres(stderrs.New("conn reset"), "list"); !IsCode(err, ErrorCodeDB) {
		t.Fatalf("foreign code = %v", CodeOf(err))
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatalf("nil is not retryable")
	}
	if IsRetryable(Wrap(context.DeadlineExceeded, ErrorCodeDB, "x")) {
		t.Fatalf("deadline is not retryable")
	}
	if !IsRetryable(Wrap(pg("40001"), ErrorCodeDB, "x")) {
		t.Fatalf("serialization failure should retry")
	}
	if IsRetryable(pg("23505")) {
		t.Fatalf("duplicate key should not retry")
	}
	if !IsRetryable(stderrs.New("ERROR: deadlock detected")) {
		t.Fatalf("text fallback should retry")
	}
	if IsRetryable(stderrs.New("syntax error")) {
		t.Fatalf("plain error should not retry")
	}
}
