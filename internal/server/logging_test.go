package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, LogMsgRequestHeaders) {
		t.Fatalf("log output missing headers entry: %s", logOutput)
	}
	if strings.Contains(logOutput, "secret-key-123") {
		t.Errorf("log output contains X-API-Key value: %s", logOutput)
	}
	if strings.Contains(logOutput, "mytoken") {
		t.Errorf("log output contains Authorization value: %s", logOutput)
	}
	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("log output missing non-sensitive header: %s", logOutput)
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store", nil))
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("expected generated request id on response")
	}

	req := httptest.NewRequest(http.MethodGet, "/store", nil)
	req.Header.Set(HeaderRequestID, "upstream-id")
	rec = httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "upstream-id" {
		t.Errorf("expected upstream request id to be kept, got %q", got)
	}
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureLogs(t)

	for _, path := range QuietPaths {
		loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if strings.Contains(buf.String(), LogMsgRequestStarted) {
		t.Errorf("quiet paths should not be logged: %s", buf.String())
	}
}
