package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankocr/internal/core/decoder"
	"bankocr/internal/platform/config"
	phttp "bankocr/internal/platform/net/http"
	kit "bankocr/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       int             `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("CORE_API_MAX_IMAGES", "2")
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{Config: config.New(), EnableSwagger: true})
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code, env
}

func classifyBody(t *testing.T, imgs ...[]string) string {
	t.Helper()
	type img struct {
		Lines []string `json:"lines"`
	}
	in := struct {
		Images []img `json:"images"`
	}{}
	for _, ls := range imgs {
		in.Images = append(in.Images, img{Lines: ls})
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func rendered(t *testing.T, digits string) []string {
	t.Helper()
	img, err := decoder.Render(digits)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img.Lines()
}

func TestClassifyEndpoint(t *testing.T) {
	h := newAPI(t)
	code, env := do(t, h, http.MethodPost, "/api/v1/ocr/classify", classifyBody(t, rendered(t, "888888888"), rendered(t, "123456788")))
	if code != http.StatusOK {
		t.Fatalf("status %d: %+v", code, env)
	}
	if env.RequestID == "" {
		t.Fatalf("request id missing")
	}
	var out struct {
		Results []struct {
			Line string `json:"line"`
		} `json:"results"`
		Persisted bool `json:"persisted"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(out.Results) != 2 || out.Persisted ||
		out.Results[0].Line != "888888888 AMB [888886888, 888888880, 888888988]" || out.Results[1].Line != "123456789" {
		t.Fatalf("results %+v", out)
	}
}

func TestClassifyEndpoint_Rejects(t *testing.T) {
	h := newAPI(t)
	ok := rendered(t, "123456789")
	cases := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"no images", `{"images":[]}`, http.StatusBadRequest, "images"},
		{"two lines", classifyBody(t, ok[:2]), http.StatusBadRequest, "images[0].lines"},
		{"bad glyph", classifyBody(t, []string{ok[0], ok[1], strings.Replace(ok[2], "|", "#", 1)}), http.StatusBadRequest, "images[0].lines[2]"},
		{"too many", classifyBody(t, ok, ok, ok), http.StatusRequestEntityTooLarge, "images"},
		{"unknown field", `{"images":[{"lines":["","",""]}],"x":1}`, http.StatusBadRequest, ""},
		{"not json", `{`, http.StatusBadRequest, ""},
	}
	for _, c := range cases {
		code, env := do(t, h, http.MethodPost, "/api/v1/ocr/classify", c.body)
		if code != c.status || env.Field != c.field {
			t.Fatalf("%s: got %d field %q (%s), want %d field %q", c.name, code, env.Field, env.Error, c.status, c.field)
		}
	}
}

func TestChecksumAndGlyphs(t *testing.T) {
	h := newAPI(t)
	code, env := do(t, h, http.MethodPost, "/api/v1/ocr/checksum", `{"account":"345882865"}`)
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"valid":true`) {
		t.Fatalf("checksum %d %s", code, env.Data)
	}
	code, env = do(t, h, http.MethodPost, "/api/v1/ocr/checksum", `{"account":"12345678x"}`)
	if code != http.StatusBadRequest || env.Field != "account" {
		t.Fatalf("non numeric %d %+v", code, env)
	}

	code, env = do(t, h, http.MethodGet, "/api/v1/ocr/glyphs", "")
	if code != http.StatusOK {
		t.Fatalf("glyphs %d", code)
	}
	kit.MustContain(t, string(env.Data), `"digit":9`)
}

func TestBatchesWithoutStore(t *testing.T) {
	h := newAPI(t)
	for _, p := range []string{"/api/v1/ocr/batches/" + uuid.NewString(), "/api/v1/ocr/batches/" + uuid.NewString() + "/summary"} {
		if code, _ := do(t, h, http.MethodGet, p, ""); code != http.StatusServiceUnavailable {
			t.Fatalf("%s: %d", p, code)
		}
	}
}

func TestMetaAndDocs(t *testing.T) {
	h := newAPI(t)
	code, env := do(t, h, http.MethodGet, "/api/v1/meta/ready", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"status":"ok"`) || !strings.Contains(string(env.Data), `"skipped"`) {
		t.Fatalf("ready %d %s", code, env.Data)
	}
	code, env = do(t, h, http.MethodGet, "/api/v1/meta/version", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"service":"bankocr-api"`) {
		t.Fatalf("version %d %s", code, env.Data)
	}
	if code, _ := do(t, h, http.MethodGet, "/api/v1/meta/health", ""); code != http.StatusOK {
		t.Fatalf("health %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("docs %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), "/ocr/classify")
}
