package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandClient_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/bands/b1":
			w.WriteHeader(http.StatusOK)
		case "/api/bands/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewBandClient(srv.URL, time.Second)

	ok, err := c.Exists(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Exists(context.Background(), "broken")
	assert.Error(t, err)
}

func TestBandClient_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bands/b1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","name":"The Strays","description":"indie rock"}`))
	}))
	defer srv.Close()

	c := NewBandClient(srv.URL, time.Second)

	band, err := c.Summary(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "The Strays", band.Name)
	assert.Equal(t, "indie rock", band.Description)

	_, err = c.Summary(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBandNotFound)
}

func TestVenueClient_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/establishments/v1":
			w.WriteHeader(http.StatusOK)
		case "/api/establishments/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewVenueClient(srv.URL, time.Second)

	ok, err := c.Exists(context.Background(), "v1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Exists(context.Background(), "broken")
	assert.Error(t, err)
}
