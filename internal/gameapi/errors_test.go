package gameapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMapsEveryStatusBand(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusUnprocessableEntity, KindBadRequest},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
		{http.StatusServiceUnavailable, KindServer},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.status), "status %d", tc.status)
	}
}

func TestTransportFailureIsUnreachableNotServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second)
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindUnreachable, KindOf(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
}

func TestUpstreamErrorCarriesBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"already reported"}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	err := client.Ping(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, KindConflict, apiErr.Kind)
	assert.Equal(t, "already reported", apiErr.Message)
	assert.True(t, IsConflict(err))
}

func TestUpstreamErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second)
	err := client.Ping(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusForbidden), apiErr.Message)
}

func TestKindOfForeignErrorDefaultsToServer(t *testing.T) {
	assert.Equal(t, KindServer, KindOf(fmt.Errorf("plain failure")))
}

func TestCancelledContextStopsTheCall(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(srv.URL, 10*time.Second)

	errc := make(chan error, 1)
	go func() { errc <- client.Ping(ctx) }()

	<-started
	cancel()

	err := <-errc
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
