package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	previous := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = previous })

	handler := middleware.RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	})))

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/1/mark-ready", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request handled").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/admin/orders/1/mark-ready", fields["uri"])
	assert.Equal(t, http.MethodPatch, fields["method"])
	assert.EqualValues(t, http.StatusAccepted, fields["status"])
	assert.EqualValues(t, len("queued"), fields["size"])
	assert.NotEmpty(t, fields["requestID"])
}

func TestInitialize(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	assert.Error(t, Initialize("loud", "production"))
	assert.NoError(t, Initialize("debug", "development"))
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
}
