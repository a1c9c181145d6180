package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "11", want: 11},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("attemptID", tt.raw)
			r := httptest.NewRequest(http.MethodGet, "/", nil).
				WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))

			id, err := pathID(r, "attemptID")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPathParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCallerID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := callerID(r)
	assert.ErrorIs(t, err, ErrMissingIdentity)

	r = r.WithContext(utils.WithIdentity(r.Context(), 5, models.RoleStudent))
	userID, err := callerID(r)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}
