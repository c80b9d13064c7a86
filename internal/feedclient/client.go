package feedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avoronin/pikcha/backend/internal/models"
)

// Client is a thin HTTP client for the pikcha API, used by feed consumers.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL. The token is sent
// as a bearer credential on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchPublicPosts retrieves all publicly visible posts
func (c *Client) FetchPublicPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/post/all/public", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchComments retrieves a post's comments in creation order
func (c *Client) FetchComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.getJSON(ctx, "/comments/"+postID, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// FetchFollowing retrieves the follow relations originating from a user
func (c *Client) FetchFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	var follows []models.Follow
	if err := c.getJSON(ctx, "/follow/"+userID+"/following", &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

// Follow performs the authoritative follow action for a user
func (c *Client) Follow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/follow/"+userID)
}

// Unfollow performs the authoritative unfollow action for a user
func (c *Client) Unfollow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/follow/"+userID)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) do(ctx context.Context, method, path string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
