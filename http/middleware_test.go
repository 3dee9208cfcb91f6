package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogMiddleware_AssignsIDAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	w := httptest.NewRecorder()
	RequestLogMiddleware(logger, next).ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["request_id"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/anything", fields["path"])
}

func TestRequestLogMiddleware_DefaultsStatusToOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	RequestLogMiddleware(zap.New(core), next).ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["bytes"])
}
