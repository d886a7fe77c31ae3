package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahna8/store-and-inventory-microservice/internal/auth"
	"github.com/yahna8/store-and-inventory-microservice/internal/catalog"
	"github.com/yahna8/store-and-inventory-microservice/internal/database/memory"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/equip"
	"github.com/yahna8/store-and-inventory-microservice/internal/inventory"
	"github.com/yahna8/store-and-inventory-microservice/internal/points"
	"github.com/yahna8/store-and-inventory-microservice/internal/purchase"
)

const (
	testJWTSecret = "router-test-secret"
	testAPIKey    = "router-test-key"
)

type healthyPool struct{}

func (healthyPool) Ping(context.Context) error { return nil }
func (healthyPool) Close() {}

type routerHarness struct {
	handler http.Handler
	store   *memory.Store
	cat     domain.CatalogItem
	dog     domain.CatalogItem
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()

	ledger := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ledger.Close)

	store := memory.NewStore()
	cat := store.AddItem(domain.CatalogItem{Name: "Cat", Image: domain.ImageCat, Price: 100, Category: "pets", Available: true})
	dog := store.AddItem(domain.CatalogItem{Name: "Dog", Image: domain.ImageDog, Price: 150, Category: "pets", Available: true})

	catalogSvc := catalog.NewService(store, domain.OwnershipPerUser)
	inventorySvc := inventory.NewService(store)
	coord := purchase.NewCoordinator(catalogSvc, inventorySvc, inventorySvc, store,
		points.NewHTTPClient(ledger.URL, "", time.Second),
		purchase.Config{MaxAttempts: 1, RetryBase: time.Millisecond, Timeout: 5 * time.Second})

	h := NewRouter(Options{
		APIKey:             testAPIKey,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		ServiceName:        "store-inventory",
		Version:            "test",
	}, Services{
		DB:        healthyPool{},
		Verifier:  auth.NewVerifier(testJWTSecret, 16, time.Minute),
		Catalog:   catalogSvc,
		Inventory: inventorySvc,
		Equip:     equip.NewService(store),
		Purchase:  coord,
	})

	return &routerHarness{handler: h, store: store, cat: cat, dog: dog}
}

func (h *routerHarness) do(t *testing.T, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := auth.IssueToken(testJWTSecret, userID, time.Minute)
		require.NoError(t, err)
		req.Header.Set(HeaderAuthorization, auth.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := newRouterHarness(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := h.do(t, http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_UserRoutesRequireToken(t *testing.T) {
	h := newRouterHarness(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/store"},
		{http.MethodPost, "/store/purchase"},
		{http.MethodGet, "/inventory"},
		{http.MethodPost, "/inventory/equip"},
		{http.MethodGet, "/inventory/equipped"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := h.do(t, route.method, route.path, "{}", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_AddRequiresAPIKey(t *testing.T) {
	h := newRouterHarness(t)
	body := `{"item_id":1,"user_id":"alice"}`

	// A user token is not a service credential
	rec := h.do(t, http.MethodPost, "/inventory/add", body, "alice")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/inventory/add", strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec = httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, h.store.OwnershipCount("alice", h.cat.ID))
}

func TestRouter_PurchaseFlow(t *testing.T) {
	h := newRouterHarness(t)

	rec := h.do(t, http.MethodGet, "/store", "", "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []domain.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)

	rec = h.do(t, http.MethodPost, "/store/purchase", `{"item_id":`+itoa(h.cat.ID)+`}`, "alice")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/store/purchase", `{"item_id":`+itoa(h.cat.ID)+`}`, "alice")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodGet, "/store", "", "alice")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, h.dog.ID, listed[0].ID)

	rec = h.do(t, http.MethodGet, "/inventory", "", "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var owned []domain.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owned))
	require.Len(t, owned, 1)
	assert.Equal(t, h.cat.ID, owned[0].ID)

	rec = h.do(t, http.MethodPost, "/inventory/equip", `{"item_id":`+itoa(h.dog.ID)+`}`, "alice")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/inventory/equip", `{"item_id":`+itoa(h.cat.ID)+`}`, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/inventory/equipped", "", "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var slot struct {
		ItemID *int64 `json:"item_id"`
		Name   string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slot))
	require.NotNil(t, slot.ItemID)
	assert.Equal(t, h.cat.ID, *slot.ItemID)
	assert.Equal(t, "Cat", slot.Name)
}

func TestRouter_OtherUsersUnaffected(t *testing.T) {
	h := newRouterHarness(t)

	rec := h.do(t, http.MethodPost, "/store/purchase", `{"item_id":`+itoa(h.cat.ID)+`}`, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/inventory", "", "bob")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = h.do(t, http.MethodGet, "/inventory/equipped", "", "bob")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.EquippedNoneName)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newRouterHarness(t)

	req := httptest.NewRequest(http.MethodOptions, "/store", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
