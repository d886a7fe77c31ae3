package points

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

func TestHTTPClient_Deduct(t *testing.T) {
	tests := []struct {
		name             string
		status           int
		body             string
		wantErr          bool
		wantTransient    bool
		wantInsufficient bool
	}{
		{name: "success", status: http.StatusOK, body: `{"message":"ok"}`},
		{name: "payment required", status: http.StatusPaymentRequired, body: `{"detail":"no"}`, wantErr: true, wantInsufficient: true},
		{name: "bad request insufficient", status: http.StatusBadRequest, body: `{"detail":"Insufficient points"}`, wantErr: true, wantInsufficient: true},
		{name: "bad request other", status: http.StatusBadRequest, body: `{"detail":"amount must be positive"}`, wantErr: true},
		{name: "unknown user", status: http.StatusNotFound, body: `{"detail":"User not found"}`, wantErr: true},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, wantErr: true, wantTransient: true},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: true, wantTransient: true},
		{name: "bad gateway", status: http.StatusBadGateway, body: ``, wantErr: true, wantTransient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got deductRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, DeductPath, r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewHTTPClient(server.URL, "", time.Second).Deduct(t.Context(), "alice", 100)

			assert.Equal(t, "alice", got.UserID)
			assert.Equal(t, int64(100), got.Amount)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantTransient, IsTransient(err))
			assert.Equal(t, tt.wantInsufficient, errors.Is(err, domain.ErrInsufficientPoints))
		})
	}
}

func TestHTTPClient_Deduct_TransportErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewHTTPClient(server.URL, "", time.Second).Deduct(t.Context(), "alice", 100)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestHTTPClient_Deduct_TimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	err := NewHTTPClient(server.URL, "", 50*time.Millisecond).Deduct(t.Context(), "alice", 100)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestIsTransient_UnclassifiedError(t *testing.T) {
	assert.False(t, IsTransient(domain.ErrInsufficientPoints))
	assert.False(t, IsTransient(nil))
}
