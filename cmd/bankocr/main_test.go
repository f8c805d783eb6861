package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bankocr/internal/core/decoder"
	kit "bankocr/internal/platform/testkit"
)

func scanFile(t *testing.T, digits ...string) string {
	t.Helper()
	var b strings.Builder
	for _, d := range digits {
		img, err := decoder.Render(d)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		b.WriteString(strings.Join(img.Lines(), "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

func TestRun_StdinToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader(scanFile(t, "000000051", "123456788", "222222222", "490067715"))
	code := run(context.Background(), []string{"-workers", "2"}, in, &out, &errOut)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	want := "000000051\n123456789\n222222222 ERR\n490067715 AMB [490067115, 490067719, 490867715]\n"
	if out.String() != want {
		t.Fatalf("output\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRun_FilesAndGzip(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, _ = zw.Write([]byte(scanFile(t, "111111111")))
	_ = zw.Close()

	in := kit.WriteFile(t, "scan.txt.gz", gz.Bytes())
	outPath := filepath.Join(t.TempDir(), "report.txt")

	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"-in", in, "-out", outPath}, nil, nil, &stderr); code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if string(got) != "711111111\n" {
		t.Fatalf("report %q", got)
	}
}

func TestRun_MalformedEntryExitsOne(t *testing.T) {
	// second entry's last row is one cell short; strict mode keeps it short
	body := scanFile(t, "123456789", "123456789")
	lines := strings.Split(body, "\n")
	lines[6] = strings.TrimRight(lines[6], " ")[:24]
	var out, stderr bytes.Buffer
	code := run(context.Background(), []string{"-strict"}, strings.NewReader(strings.Join(lines, "\n")), &out, &stderr)
	if code != exitFailed {
		t.Fatalf("exit %d, want %d", code, exitFailed)
	}
	if out.String() != "123456789\n" {
		t.Fatalf("output %q", out.String())
	}
	kit.MustContain(t, stderr.String(), "1 of 2 entries were malformed")
}

func TestRun_Usage(t *testing.T) {
	var stderr, stdout bytes.Buffer
	if code := run(context.Background(), []string{"-bogus"}, nil, &stdout, &stderr); code != exitUsage {
		t.Fatalf("bogus flag exit %d", code)
	}
	if code := run(context.Background(), []string{"extra"}, nil, &stdout, &stderr); code != exitUsage {
		t.Fatalf("positional arg exit %d", code)
	}
	if code := run(context.Background(), []string{"-in", filepath.Join(t.TempDir(), "missing")}, nil, &stdout, &stderr); code != exitFailed {
		t.Fatalf("missing input exit %d", code)
	}
	if code := run(context.Background(), []string{"-version"}, nil, &stdout, &stderr); code != exitOK {
		t.Fatalf("version exit %d", code)
	}
	kit.MustContain(t, stdout.String(), "bankocr ")
}

func TestRun_PersistNeedsPostgres(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-persist"}, strings.NewReader(scanFile(t, "123456789")), &stdout, &stderr)
	if code != exitUsage {
		t.Fatalf("exit %d", code)
	}
	kit.MustContain(t, stderr.String(), "SERVICE_PGSQL_DBURL")
}
