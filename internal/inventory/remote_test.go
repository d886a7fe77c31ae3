package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yahna8/store-and-inventory-microservice/internal/apiclient"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

func TestRemoteGranter_Grant(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK},
		{name: "already owned", status: http.StatusConflict, wantErr: domain.ErrAlreadyOwned},
		{name: "unknown item", status: http.StatusNotFound, wantErr: domain.ErrItemNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domain.ErrFulfillment},
		{name: "server error", status: http.StatusInternalServerError, wantErr: domain.ErrFulfillment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got addRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, AddPath, r.URL.Path)
				assert.Equal(t, "secret", r.Header.Get(apiclient.HeaderAPIKey))
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"x"}`))
			}))
			defer server.Close()

			err := NewRemoteGranter(server.URL, "secret", time.Second).Grant(t.Context(), "alice", 7)

			assert.Equal(t, "alice", got.UserID)
			assert.Equal(t, int64(7), got.ItemID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoteGranter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewRemoteGranter(url, "", 200*time.Millisecond).Grant(t.Context(), "alice", 1)
	assert.ErrorIs(t, err, domain.ErrFulfillment)
}
