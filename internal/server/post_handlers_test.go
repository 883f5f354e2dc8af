package server

import (
	"fmt"
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeIncrementsByExactlyOne(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	post := models.Post{Content: "leg day", UserID: alice.User.ID}
	require.NoError(t, db.Create(&post).Error)

	var likeResp struct {
		Likes int `json:"likes"`
	}
	for want := 1; want <= 3; want++ {
		resp := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/posts/%d/like", post.ID), nil, alice.AccessToken, &likeResp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, want, likeResp.Likes)
	}

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, 3, reloaded.Likes)
}

func TestLikeMissingPost(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts/9999/like", nil, alice.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostPagination(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	for i := 0; i < 15; i++ {
		post := models.Post{Content: fmt.Sprintf("post %d", i), UserID: alice.User.ID}
		require.NoError(t, db.Create(&post).Error)
	}

	var page struct {
		Posts       []models.Post `json:"posts"`
		Total       int64         `json:"total"`
		Pages       int           `json:"pages"`
		CurrentPage int           `json:"current_page"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/posts?page=2&per_page=10", nil, "", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Len(t, page.Posts, 5)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestPostSearch(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	for _, content := range []string{"Morning Run recap", "bench press PR", "evening run notes"} {
		post := models.Post{Content: content, UserID: alice.User.ID}
		require.NoError(t, db.Create(&post).Error)
	}

	var page struct {
		Posts []models.Post `json:"posts"`
		Total int64         `json:"total"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/posts?search=RUN", nil, "", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Posts, 2)
}

func TestCreateAndUpdatePostOwnership(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")
	bob := registerUser(t, app, "bobby", "bob@example.com")

	var created models.Post
	resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
		"content": "first post",
	}, alice.AccessToken, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, alice.User.ID, created.UserID)

	// Another user cannot update it.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/posts/%d", created.ID), map[string]string{
			"content": "hijacked",
		}, bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The owner can.
	var updated models.Post
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/posts/%d", created.ID), map[string]string{
			"content": "edited post",
		}, alice.AccessToken, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "edited post", updated.Content)
}

func TestGetPostsByUsername(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")
	bob := registerUser(t, app, "bobby", "bob@example.com")

	require.NoError(t, db.Create(&models.Post{Content: "mine", UserID: alice.User.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Content: "theirs", UserID: bob.User.ID}).Error)

	var got struct {
		Posts []models.Post      `json:"posts"`
		User  models.UserSummary `json:"user"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/posts/user/alice", nil, "", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "mine", got.Posts[0].Content)
	assert.Equal(t, "alice", got.User.Username)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/user/ghost", nil, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
