package server

import (
	"fmt"
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutCRUD(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	var created models.Workout
	resp := doJSON(t, app, http.MethodPost, "/api/workouts", map[string]interface{}{
		"name":       "Morning HIIT",
		"difficulty": "Hard",
		"duration":   30,
		"exercises":  "burpees, squats, lunges",
	}, alice.AccessToken, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, alice.User.ID, created.UserID)

	var fetched models.Workout
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/workouts/%d", created.ID), nil, "", &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Morning HIIT", fetched.Name)

	var updated models.Workout
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/workouts/%d", created.ID), map[string]interface{}{
			"duration": 45,
		}, alice.AccessToken, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 45, updated.Duration)
	assert.Equal(t, "Morning HIIT", updated.Name)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/workouts/%d", created.ID), nil, alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/workouts/%d", created.ID), nil, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWorkoutOwnerScopedWrites(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")
	bob := registerUser(t, app, "bobby", "bob@example.com")

	workout := models.Workout{Name: "Private Session", Duration: 60, UserID: alice.User.ID}
	require.NoError(t, db.Create(&workout).Error)

	// A non-owner gets 404, not 403: existence is not disclosed.
	resp := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/workouts/%d", workout.ID), map[string]interface{}{
			"name": "stolen",
		}, bob.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/workouts/%d", workout.ID), nil, bob.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var still models.Workout
	assert.NoError(t, db.First(&still, workout.ID).Error)
}

func TestWorkoutSearchPagination(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	names := []string{"Yoga Flow", "Yoga Basics", "Heavy Lifting"}
	for _, name := range names {
		require.NoError(t, db.Create(&models.Workout{
			Name: name, Duration: 30, UserID: alice.User.ID,
		}).Error)
	}

	var page struct {
		Workouts []models.Workout `json:"workouts"`
		Total    int64            `json:"total"`
		Pages    int              `json:"pages"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/workouts?search=yoga", nil, "", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Workouts, 2)
	assert.Equal(t, 1, page.Pages)
}
