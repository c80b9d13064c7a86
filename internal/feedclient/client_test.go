package feedclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avoronin/pikcha/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer fakes the pikcha HTTP surface the client consumes.
func newAPIServer(t *testing.T, posts []models.Post, comments map[string][]models.Comment, failing map[string]bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/post/all/public", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(posts)
	})
	mux.HandleFunc("/comments/", func(w http.ResponseWriter, r *http.Request) {
		postID := strings.TrimPrefix(r.URL.Path, "/comments/")
		if failing[postID] {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		list := comments[postID]
		if list == nil {
			list = []models.Comment{}
		}
		json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("/follow/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Follow{
			{FollowerID: "viewer", UserID: "friend-1"},
			{FollowerID: "viewer", UserID: "friend-2"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoadFeedAgainstServer(t *testing.T) {
	viewerPost := makePost("viewer", 0)
	p1 := makePost("alice", 3)
	p2 := makePost("bob", 0)
	broken := makePost("carol", 1)

	comments := map[string][]models.Comment{
		p1.ID.Hex(): makeComments(p1.ID.Hex(), "older", "newest"),
	}
	srv := newAPIServer(t, []models.Post{viewerPost, p1, p2, broken}, comments, map[string]bool{broken.ID.Hex(): true})

	client := NewClient(srv.URL, "test-token")
	feed, err := NewSeededLoader(client, 1).LoadFeed(context.Background(), "viewer")
	require.NoError(t, err)

	require.Len(t, feed.Posts, 3, "viewer's own post is filtered out")
	byID := map[string]FeedPost{}
	for _, p := range feed.Posts {
		byID[p.ID.Hex()] = p
	}
	assert.Equal(t, "newest", byID[p1.ID.Hex()].LastComment)
	assert.Equal(t, "", byID[p2.ID.Hex()].LastComment)
	assert.Equal(t, NoCommentsSentinel, byID[broken.ID.Hex()].LastComment)
	assert.Equal(t, 3, feed.LikesCounts[p1.ID.Hex()])
	assert.Equal(t, 1, feed.LikesCounts[broken.ID.Hex()])
}

func TestClientFetchFollowing(t *testing.T) {
	srv := newAPIServer(t, nil, nil, nil)
	client := NewClient(srv.URL, "test-token")

	fc := NewFollowCache(client, "viewer")
	require.NoError(t, fc.Refresh(context.Background()))
	assert.Equal(t, []string{"friend-1", "friend-2"}, fc.Following())
}

func TestClientSurfacesListFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/post/all/public", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "test-token")
	_, err := NewSeededLoader(client, 1).LoadFeed(context.Background(), "viewer")
	require.Error(t, err)
}

func TestClientFollowUnfollow(t *testing.T) {
	var gotMethods []string
	mux := http.NewServeMux()
	mux.HandleFunc("/follow/bob", func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		json.NewEncoder(w).Encode(map[string]bool{"following": r.Method == http.MethodPost})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "test-token")
	require.NoError(t, client.Follow(context.Background(), "bob"))
	require.NoError(t, client.Unfollow(context.Background(), "bob"))
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, gotMethods)
}
