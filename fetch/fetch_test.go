package fetch

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	m3u8 "github.com/playlistkit/go-m3u8"
	"github.com/stretchr/testify/assert"
)

const masterBody = "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1280000\nlow.m3u8\n"

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(masterBody))
	}))
	defer server.Close()

	body, err := NewClient(0).Fetch(server.URL + "/master.m3u8")
	assert.NoError(t, err)
	assert.Equal(t, masterBody, body)
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewClient(0).Fetch(server.URL + "/missing.m3u8")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Write([]byte(masterBody))
	}))
	defer server.Close()

	client := NewClient(time.Second)
	client.SetHeader("Authorization", "Bearer token")

	_, err := client.Fetch(server.URL)
	assert.NoError(t, err)
}

func TestFetchBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hls/master.m3u8", r.URL.Path)
		w.Write([]byte(masterBody))
	}))
	defer server.Close()

	client := NewClient(0)
	client.SetBaseURL(server.URL)

	_, err := client.Fetch("/hls/master.m3u8")
	assert.NoError(t, err)
}

func TestFromURIWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(masterBody))
	}))
	defer server.Close()

	playlist, err := m3u8.FromURI(server.URL+"/master.m3u8", NewClient(0))
	assert.NoError(t, err)
	assert.Equal(t, "low.m3u8", playlist.VariantStreams[0]["uri"])
}

func TestFromURIFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := m3u8.FromURI(server.URL+"/master.m3u8", NewClient(0))

	var fetchErr *m3u8.FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.NotNil(t, fetchErr.Unwrap())
}
