package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "bankocr/internal/platform/errors"
)

type image struct {
	Lines []string `json:"lines" validate:"len=3,dive,onlyglyph"`
}

type batch struct {
	Images  []image `json:"images" validate:"required,min=1,max=2,dive"`
	Persist bool    `json:"persist"`
}

func init() {
	_ = RegisterValidation("onlyglyph", "{0} may only hold spaces, underscores and pipes", func(fl FieldLevel) bool {
		return strings.Trim(fl.Field().String(), " _|") == ""
	})
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[batch](post(`{"images":[{"lines":[" _ ","| |","|_|"]}],"persist":true}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(got.Images) != 1 || !got.Persist || got.Images[0].Lines[2] != "|_|" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"syntax", `{"images":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"images":[],"extra":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{"images":[{"lines":["   ","  |","  |"]}]} {}`, perr.ErrorCodeJSON, "", "trailing"},
		{"no images", `{"images":[]}`, perr.ErrorCodeValidation, "images", "at least 1"},
		{"too many", `{"images":[{"lines":["","",""]},{"lines":["","",""]},{"lines":["","",""]}]}`, perr.ErrorCodeValidation, "images", "at most 2"},
		{"two lines", `{"images":[{"lines":["",""]}]}`, perr.ErrorCodeValidation, "images[0].lines", "length 3"},
		{"bad char", `{"images":[{"lines":["   ","  |"," x "]}]}`, perr.ErrorCodeValidation, "images[0].lines[2]", "underscores"},
	}
	for _, c := range cases {
		_, err := ParseJSON[batch](post(c.body))
		if !perr.IsCode(err, c.code) {
			t.Fatalf("%s: want %v, got %v", c.name, c.code, err)
		}
		e, _ := perr.As(err)
		if e.Field() != c.field || !strings.Contains(err.Error(), c.msg) {
			t.Fatalf("%s: field %q msg %q", c.name, e.Field(), err.Error())
		}
	}
}

func TestParseJSON_TooLarge(t *testing.T) {
	body := `{"images":[{"lines":["` + strings.Repeat(" ", 512) + `","",""]}]}`
	_, err := ParseJSON[batch](post(body), JSONOptions{MaxBytes: 64, DisallowUnknown: true})
	if !perr.IsCode(err, perr.ErrorCodeTooLarge) {
		t.Fatalf("want too large, got %v", err)
	}
}

func TestParseJSON_AllowUnknown(t *testing.T) {
	_, err := ParseJSON[batch](post(`{"images":[{"lines":["   ","  |","  |"]}],"note":"x"}`), JSONOptions{})
	if err != nil {
		t.Fatalf("unknown fields should pass when allowed: %v", err)
	}
}

func TestValidationFieldAndMessage_Plain(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil: %q %q", f, m)
	}
	if f, m := ValidationFieldAndMessage(perr.Internalf("boom")); f != "" || m != "boom" {
		t.Fatalf("plain: %q %q", f, m)
	}
}
