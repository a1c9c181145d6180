// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotBody = `{"session_id":"s-1","data":{"q1":"first answer","q2":"second answer"}}`

func gzipBytes(t *testing.T, data string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo returns the request body it received.
func echo(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.Write(body)
	})
}

func TestGZip_CompressedSnapshotUpload(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		acceptEncoding  string
		gzipped         bool
	}{
		{name: "gzip body, plain response", contentEncoding: "gzip", gzipped: false},
		{name: "gzip body, gzip response", contentEncoding: "gzip", acceptEncoding: "gzip", gzipped: true},
		{name: "plain body, gzip response with q-values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", gzipped: true},
		{name: "encoding list", contentEncoding: "gzip, deflate", acceptEncoding: "deflate, gzip, br", gzipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(snapshotBody)
			if tt.contentEncoding != "" {
				body = gzipBytes(t, snapshotBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/attempts/7/snapshots", body)
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(echo(t)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.gzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, snapshotBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, snapshotBody, rr.Body.String())
		})
	}
}

func TestGZip_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/attempts/7/snapshots", strings.NewReader(snapshotBody))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echo(t)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_ReaderReuse(t *testing.T) {
	h := withGZip(echo(t))

	for _, answer := range []string{"alpha", "beta", "gamma"} {
		payload := `{"data":{"q1":"` + answer + `"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/attempts/7/snapshots", gzipBytes(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, payload, rr.Body.String())
	}
}

func TestGZip_KeepsStatus(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/attempts", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"id":7}`, gunzip(t, rr.Body))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	var closed bool
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}
	assert.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
