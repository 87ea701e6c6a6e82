package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

const listBody = `{
	"retcode": 0,
	"message": "OK",
	"data": {"list": [
		{"gacha_id": "a1", "gacha_type": 301, "begin_time": "2024-01-01 10:00:00", "end_time": "2024-01-21 17:59:00", "gacha_name": "<color=#f00>Epitome</color>"},
		{"gacha_id": "b2", "gacha_type": 200, "begin_time": "2020-09-28 00:00:00", "end_time": "2030-01-01 00:00:00", "gacha_name": "Wanderlust"}
	]}
}`

func TestClient_FetchJSON(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get(HeaderUserAgent)
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"title": "x"}`))
		case "/html":
			_, _ = w.Write([]byte(`<html></html>`))
		default:
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c := NewClient(time.Second, "test-agent")
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, err := c.FetchJSON(ctx, srv.URL+"/ok")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title": "x"}`, string(body))
		assert.Equal(t, "test-agent", gotUA)
	})

	t.Run("non-2xx is unavailable", func(t *testing.T) {
		_, err := c.FetchJSON(ctx, srv.URL+"/down")
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("invalid JSON is a schema error", func(t *testing.T) {
		_, err := c.FetchJSON(ctx, srv.URL+"/html")
		assert.ErrorIs(t, err, domain.ErrUpstreamSchema)
	})

	t.Run("unreachable host is unavailable", func(t *testing.T) {
		_, err := c.FetchJSON(ctx, "http://127.0.0.1:1/x")
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestClient_FetchList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listBody))
	}))
	defer srv.Close()

	stubs, err := NewClient(0, "").FetchList(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, stubs, 2)

	assert.Equal(t, "a1", stubs[0].ID())
	assert.Equal(t, 301, stubs[0].TypeCode())
	assert.NotContains(t, stubs[0], domain.StubFieldName)
	assert.Equal(t, json.Number("200"), stubs[1][domain.StubFieldType])
}

func TestParseList_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-zero retcode", `{"retcode": -1, "message": "bad"}`},
		{"missing retcode", `{"data": {"list": []}}`},
		{"missing list", `{"retcode": 0, "data": {}}`},
		{"list not an array", `{"retcode": 0, "data": {"list": {}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseList("test", []byte(tt.body))
			assert.ErrorIs(t, err, domain.ErrUpstreamSchema)
		})
	}
}

func TestParseList_Empty(t *testing.T) {
	stubs, err := ParseList("test", []byte(`{"retcode": 0, "data": {"list": []}}`))
	require.NoError(t, err)
	assert.Empty(t, stubs)
}

func TestDownloader(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	d := NewDownloader(NewClient(time.Second, ""))
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "genshin", "character", "Epitome.png")

	assert.True(t, d.Download(ctx, srv.URL+"/a.png", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))

	t.Run("existing file is not overwritten", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("OLD"), 0o644))
		assert.False(t, d.Download(ctx, srv.URL+"/a.png", path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "OLD", string(data))
		assert.Equal(t, 1, hits)
	})

	t.Run("failures are swallowed", func(t *testing.T) {
		other := filepath.Join(filepath.Dir(path), "Other.png")
		assert.False(t, d.Download(ctx, srv.URL+"/missing.png", other))
		_, err := os.Stat(other)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty url is ignored", func(t *testing.T) {
		assert.False(t, d.Download(ctx, "", path))
	})
}
