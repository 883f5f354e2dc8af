package server

import (
	"fmt"
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinChallengeAndProgress(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	challenge := models.Challenge{Name: "30-Day Fitness", Target: 30, IsActive: true}
	require.NoError(t, db.Create(&challenge).Error)

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/challenges/%d/join", challenge.ID), nil, alice.AccessToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate join is rejected.
	resp = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/challenges/%d/join", challenge.ID), nil, alice.AccessToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Progress below the target does not complete.
	var participation models.UserChallenge
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/challenges/%d/progress", challenge.ID), map[string]int{
			"progress": 10,
		}, alice.AccessToken, &participation)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, participation.Progress)
	assert.False(t, participation.Completed)

	// Reaching the target derives completed.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/challenges/%d/progress", challenge.ID), map[string]int{
			"progress": 30,
		}, alice.AccessToken, &participation)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, participation.Completed)

	var myChallenges struct {
		Challenges []models.UserChallenge `json:"challenges"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/challenges/my-challenges", nil, alice.AccessToken, &myChallenges)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, myChallenges.Challenges, 1)
	assert.Equal(t, "30-Day Fitness", myChallenges.Challenges[0].Challenge.Name)
}

func TestChallengeListCountsParticipants(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")
	bob := registerUser(t, app, "bobby", "bob@example.com")

	active := models.Challenge{Name: "Weekly Run", Target: 7, IsActive: true}
	inactive := models.Challenge{Name: "Old Challenge", Target: 14, IsActive: false}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&inactive).Error)

	doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/challenges/%d/join", active.ID), nil, alice.AccessToken, nil)
	doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/challenges/%d/join", active.ID), nil, bob.AccessToken, nil)

	var got struct {
		Challenges []struct {
			Name         string `json:"name"`
			Participants int64  `json:"participants"`
		} `json:"challenges"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/challenges", nil, "", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Inactive challenges are not listed.
	require.Len(t, got.Challenges, 1)
	assert.Equal(t, "Weekly Run", got.Challenges[0].Name)
	assert.Equal(t, int64(2), got.Challenges[0].Participants)
}

func TestCreateChallengeRequiresAdmin(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	body := map[string]interface{}{
		"name":   "Admin Challenge",
		"target": 21,
	}

	resp := doJSON(t, app, http.MethodPost, "/api/challenges", body, alice.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", alice.User.ID).
		Update("is_admin", true).Error)

	resp = doJSON(t, app, http.MethodPost, "/api/challenges", body, alice.AccessToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
