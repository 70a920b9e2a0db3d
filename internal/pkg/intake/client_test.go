package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendPostsJSON(t *testing.T) {
	var got Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rec := NewRecord(testNotification(t), time.Now())
	err := NewClient(srv.URL, srv.Client()).Send(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestClientSendNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Send(context.Background(), Record{DraftID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestClientSendWithoutEndpoint(t *testing.T) {
	err := NewClient("  ", nil).Send(context.Background(), Record{})
	assert.True(t, errors.Is(err, ErrEndpointNotConfigured))
}

func TestClientBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	for i := 0; i < 6; i++ {
		require.Error(t, c.Send(context.Background(), Record{}))
	}
	require.Equal(t, int32(6), atomic.LoadInt32(&hits))

	err := c.Send(context.Background(), Record{})
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(6), atomic.LoadInt32(&hits))
}
