package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID_UnmarshalBareString(t *testing.T) {
	var v VideoID
	require.NoError(t, json.Unmarshal([]byte(`"abc123"`), &v))
	assert.Equal(t, VideoID("abc123"), v)
}

func TestVideoID_UnmarshalObjectPrefersVideoID(t *testing.T) {
	var v VideoID
	require.NoError(t, json.Unmarshal([]byte(`{"videoId":"inner","id":"outer"}`), &v))
	assert.Equal(t, VideoID("inner"), v)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"outer"}`), &v))
	assert.Equal(t, VideoID("outer"), v)
}

func TestThumbnails_BestURLPriority(t *testing.T) {
	th := Thumbnails{
		Default: &Thumbnail{URL: "default.jpg"},
		High:    &Thumbnail{URL: "high.jpg"},
	}
	require.NotNil(t, th.BestURL())
	assert.Equal(t, "high.jpg", *th.BestURL())

	th.Medium = &Thumbnail{URL: "medium.jpg"}
	assert.Equal(t, "medium.jpg", *th.BestURL())

	assert.Nil(t, Thumbnails{}.BestURL())
}

func TestSearch_QueryParameters(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("secret-key", WithBaseURL(srv.URL))
	cutoff := time.Date(2025, 5, 25, 8, 0, 0, 0, time.UTC)
	_, err := c.Search(context.Background(), "ai tools", cutoff, 8)
	require.NoError(t, err)

	assert.Equal(t, "snippet", gotQuery["part"])
	assert.Equal(t, "ai tools", gotQuery["q"])
	assert.Equal(t, "video", gotQuery["type"])
	assert.Equal(t, "viewCount", gotQuery["order"])
	assert.Equal(t, "2025-05-25T08:00:00Z", gotQuery["publishedAfter"])
	assert.Equal(t, "8", gotQuery["maxResults"])
	assert.Equal(t, "secret-key", gotQuery["key"])
}

func TestVideos_JoinsIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "a,b,c", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,statistics,contentDetails", r.URL.Query().Get("part"))
		_, _ = w.Write([]byte(`{"items":[{"id":"a"},{"id":"b"}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	items, err := c.Videos(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, VideoID("a"), items[0].ID)
}

func TestGet_NonOKStatusReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quotaExceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	_, err := c.Channels(context.Background(), []string{"UCx"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "channels", apiErr.Endpoint)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "quotaExceeded")
}

func TestObserver_RecordsStatusPerCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	type obs struct{ endpoint, status string }
	var seen []obs
	c := NewClient("k",
		WithBaseURL(srv.URL),
		WithObserver(func(endpoint, status string) {
			seen = append(seen, obs{endpoint, status})
		}))

	_, err := c.Videos(context.Background(), []string{"a"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, obs{"videos", "200"}, seen[0])
}
