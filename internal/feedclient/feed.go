package feedclient

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/avoronin/pikcha/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

// NoCommentsSentinel is attached to a feed post whose comment fetch failed.
const NoCommentsSentinel = "No comments yet"

// FeedAPI is the slice of the API the feed loader depends on.
type FeedAPI interface {
	FetchPublicPosts(ctx context.Context) ([]models.Post, error)
	FetchComments(ctx context.Context, postID string) ([]models.Comment, error)
}

// FeedPost is a post enriched with the text of its latest comment.
type FeedPost struct {
	models.Post
	LastComment string `json:"last_comment"`
}

// Feed is one materialized feed load. LikesCounts is keyed by post ID and
// seeded from the server-reported counts; consumers mutate it for optimistic
// like updates.
type Feed struct {
	Posts       []FeedPost
	LikesCounts map[string]int
}

// Loader builds enriched feeds. Each LoadFeed call re-randomizes the order.
type Loader struct {
	api FeedAPI

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLoader creates a Loader with a time-seeded shuffle.
func NewLoader(api FeedAPI) *Loader {
	return NewSeededLoader(api, time.Now().UnixNano())
}

// NewSeededLoader creates a Loader whose shuffle order is deterministic for
// a given seed.
func NewSeededLoader(api FeedAPI, seed int64) *Loader {
	return &Loader{
		api: api,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// LoadFeed fetches the public post list, drops the viewer's own posts,
// shuffles the rest and concurrently attaches each post's latest comment
// text. A failed per-post comment fetch degrades to NoCommentsSentinel and
// never fails the load; a failed post-list fetch fails the whole load.
func (l *Loader) LoadFeed(ctx context.Context, viewerID string) (*Feed, error) {
	posts, err := l.api.FetchPublicPosts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.UserID != viewerID {
			filtered = append(filtered, p)
		}
	}

	l.mu.Lock()
	l.rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	l.mu.Unlock()

	enriched := make([]FeedPost, len(filtered))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range filtered {
		i, p := i, p
		enriched[i] = FeedPost{Post: p}
		g.Go(func() error {
			comments, err := l.api.FetchComments(gctx, p.ID.Hex())
			if err != nil {
				enriched[i].LastComment = NoCommentsSentinel
				return nil
			}
			if len(comments) > 0 {
				enriched[i].LastComment = comments[len(comments)-1].CommentText
			}
			return nil
		})
	}
	// Enrichment goroutines never return errors, Wait is a pure join.
	g.Wait()

	likesCounts := make(map[string]int, len(enriched))
	for _, p := range enriched {
		likesCounts[p.ID.Hex()] = p.LikesCount
	}

	return &Feed{
		Posts:       enriched,
		LikesCounts: likesCounts,
	}, nil
}
