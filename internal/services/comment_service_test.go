package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/avoronin/pikcha/backend/internal/models"
	"github.com/avoronin/pikcha/backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePostRepo struct {
	posts  map[string]*models.Post
	incErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) addPost(ownerUID string) *models.Post {
	p := &models.Post{ID: primitive.NewObjectID(), UserID: ownerUID, IsPublic: true}
	r.posts[p.ID.Hex()] = p
	return p
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	return p, nil
}

func (r *fakePostRepo) GetPublicPosts(context.Context) ([]models.Post, error) { return nil, nil }

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementCommentsCount(_ context.Context, postID string) error {
	if r.incErr != nil {
		return r.incErr
	}
	r.posts[postID].CommentsCount++
	return nil
}

func (r *fakePostRepo) DecrementCommentsCount(_ context.Context, postID string) error {
	r.posts[postID].CommentsCount--
	return nil
}

func (r *fakePostRepo) IncrementLikesCount(_ context.Context, postID string) error {
	r.posts[postID].LikesCount++
	return nil
}

func (r *fakePostRepo) DecrementLikesCount(_ context.Context, postID string) error {
	r.posts[postID].LikesCount--
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*models.Comment{}}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	r.comments[comment.ID.Hex()] = comment
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteCommentsByPostID(_ context.Context, postID string) error {
	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}

func (r *fakeCommentRepo) SetLikes(_ context.Context, id string, likes []string) error {
	c, ok := r.comments[id]
	if !ok {
		return repositories.ErrCommentNotFound
	}
	c.Likes = likes
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.users[user.UID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByUID(uid string) (*models.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (r *fakeNotificationRepo) CreateNotification(n *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipientUID(string, int, int) ([]models.Notification, int64, error) {
	return nil, 0, nil
}
func (r *fakeNotificationRepo) GetUnreadCount(string) (int64, error) { return 0, nil }
func (r *fakeNotificationRepo) MarkAsRead(uint) error                { return nil }
func (r *fakeNotificationRepo) MarkAllAsRead(string) error           { return nil }

type serviceFixture struct {
	posts         *fakePostRepo
	comments      *fakeCommentRepo
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	service       *CommentService
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		posts:         newFakePostRepo(),
		comments:      newFakeCommentRepo(),
		users:         newFakeUserRepo(),
		notifications: &fakeNotificationRepo{},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	f.service = NewCommentService(f.comments, f.posts, f.users, f.notifications, log)
	return f
}

func TestCreateCommentIncrementsCounterAndNotifies(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	f.users.CreateUser(&models.User{UID: "u2", Username: "commenter"})

	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "avatar.png", "hi")
	require.NoError(t, err)

	assert.Equal(t, post.ID.Hex(), comment.PostID)
	assert.Equal(t, "u2", comment.UserID)
	assert.Equal(t, "hi", comment.CommentText)
	assert.Equal(t, "avatar.png", comment.ProfileImage)
	assert.Equal(t, 1, post.CommentsCount)

	require.Len(t, f.notifications.notifications, 1)
	n := f.notifications.notifications[0]
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, "u2", n.SenderID)
	assert.Equal(t, models.NotificationTypeComment, n.Type)
	assert.Equal(t, "commented your post.", n.Content)
}

func TestCreateCommentPostMissing(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.CreateComment(context.Background(), primitive.NewObjectID().Hex(), "u2", "", "hi")
	require.ErrorIs(t, err, repositories.ErrPostNotFound)

	assert.Empty(t, f.comments.comments)
	assert.Empty(t, f.notifications.notifications)
}

func TestCreateCommentNotificationFailureDoesNotFailCreate(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	f.notifications.createErr = errors.New("notification store down")

	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "", "hi")
	require.NoError(t, err)
	assert.NotNil(t, comment)
	assert.Equal(t, 1, post.CommentsCount)
}

func TestCreateCommentCounterFailureDoesNotFailCreate(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	f.posts.incErr = errors.New("counter update failed")

	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "", "hi")
	require.NoError(t, err)
	assert.NotNil(t, comment)
	// Known inconsistency window: the comment exists but the counter lags.
	assert.Equal(t, 0, post.CommentsCount)
	assert.Len(t, f.notifications.notifications, 1)
}

func TestDeleteCommentDecrementsCounter(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")

	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "", "hi")
	require.NoError(t, err)
	require.Equal(t, 1, post.CommentsCount)

	require.NoError(t, f.service.DeleteComment(context.Background(), comment.ID.Hex()))
	assert.Equal(t, 0, post.CommentsCount)
	assert.Empty(t, f.comments.comments)
}

func TestDeleteCommentMissingLeavesCounters(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	post.CommentsCount = 3

	err := f.service.DeleteComment(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, repositories.ErrCommentNotFound)
	assert.Equal(t, 3, post.CommentsCount)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "", "hi")
	require.NoError(t, err)
	id := comment.ID.Hex()

	res, err := f.service.ToggleLike(context.Background(), id, "u3")
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
	assert.Equal(t, 1, res.LikesCount)
	assert.Equal(t, []string{"u3"}, f.comments.comments[id].Likes)

	res, err = f.service.ToggleLike(context.Background(), id, "u3")
	require.NoError(t, err)
	assert.False(t, res.IsLiked)
	assert.Equal(t, 0, res.LikesCount)
	assert.Empty(t, f.comments.comments[id].Likes)
}

func TestToggleLikeNeverDuplicates(t *testing.T) {
	f := newServiceFixture()
	post := f.posts.addPost("u1")
	comment, err := f.service.CreateComment(context.Background(), post.ID.Hex(), "u2", "", "hi")
	require.NoError(t, err)
	id := comment.ID.Hex()

	users := []string{"u3", "u4", "u3", "u5", "u3", "u4"}
	for _, uid := range users {
		_, err := f.service.ToggleLike(context.Background(), id, uid)
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, uid := range f.comments.comments[id].Likes {
		assert.False(t, seen[uid], "duplicate like for %s", uid)
		seen[uid] = true
	}
	// u3 toggled three times (liked), u4 twice (unliked), u5 once (liked)
	assert.ElementsMatch(t, []string{"u3", "u5"}, f.comments.comments[id].Likes)
}

func TestToggleLikeNilLikesTreatedAsEmpty(t *testing.T) {
	f := newServiceFixture()
	legacy := &models.Comment{ID: primitive.NewObjectID(), PostID: "p", UserID: "u2", Likes: nil}
	f.comments.comments[legacy.ID.Hex()] = legacy

	res, err := f.service.ToggleLike(context.Background(), legacy.ID.Hex(), "u3")
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
	assert.Equal(t, 1, res.LikesCount)
}

func TestToggleLikeCommentMissing(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.ToggleLike(context.Background(), primitive.NewObjectID().Hex(), "u3")
	require.ErrorIs(t, err, repositories.ErrCommentNotFound)
}
