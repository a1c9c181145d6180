package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestMark(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/watermark/mark",
		`{"token":"0123456789ABCDEF","observer":false,"text":"my own answer"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.TextResponse](t, rec.Body.Bytes())

	session, err := watermark.NewSession("0123456789abcdef", false)
	require.NoError(t, err)
	assert.Equal(t, session.Mark("my own answer"), resp.Text)
	assert.Equal(t, "my own answer", watermark.Clean(resp.Text))
}

func TestMark_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"token":`},
		{"empty token", `{"token":"","text":"a b"}`},
		{"non hex token", `{"token":"xyz","text":"a b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodPost, "/api/watermark/mark", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestClean(t *testing.T) {
	h, _ := newTestHandler(t)
	marked := "an\u2061\u2062 answer\U000E0061"

	body, err := json.Marshal(models.TextRequest{Text: marked})
	require.NoError(t, err)
	rec := serve(h, http.MethodPost, "/api/watermark/clean", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "an answer", decodeBody[models.TextResponse](t, rec.Body.Bytes()).Text)
}

func TestScan(t *testing.T) {
	session, err := watermark.NewSession("0123456789abcdef", false)
	require.NoError(t, err)

	h, _ := newTestHandler(t)
	body, err := json.Marshal(models.TextRequest{Text: session.Mark("copied from a friend")})
	require.NoError(t, err)

	rec := serve(h, http.MethodPost, "/api/watermark/scan", string(body))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.ScanResponse](t, rec.Body.Bytes())
	assert.Contains(t, resp.Watermarks, "0123456789abcdef")
}

func TestScan_PlainTextReturnsEmptyList(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/watermark/scan", `{"text":"nothing hidden here"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"watermarks":[]}`, rec.Body.String())
}

func TestPattern(t *testing.T) {
	h, m := newTestHandler(t)
	m.exams.EXPECT().Pattern("ab12").Return("<svg></svg>", nil)

	rec := serve(h, http.MethodGet, "/api/watermark/pattern.svg?token=ab12", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<svg></svg>", rec.Body.String())
}

// brokenWriter accepts headers but fails every body write, like a client
// that hung up.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestPattern_WriteFailureIsLogged(t *testing.T) {
	h, m := newTestHandler(t)
	m.exams.EXPECT().Pattern("ab12").Return("<svg></svg>", nil)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(t.Context())
	r := httptest.NewRequest(http.MethodGet, "/api/watermark/pattern.svg?token=ab12", nil).WithContext(ctx)
	w := brokenWriter{httptest.NewRecorder()}

	h.pattern(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "error writing pattern", entry["message"])
	assert.Equal(t, "connection reset by peer", entry["error"])
}

func TestPattern_InvalidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.exams.EXPECT().Pattern("zz").Return("", fmt.Errorf("%w: zz", service.ErrInvalidToken))

	rec := serve(h, http.MethodGet, "/api/watermark/pattern.svg?token=zz", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
