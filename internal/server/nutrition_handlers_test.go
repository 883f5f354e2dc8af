package server

import (
	"fmt"
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionPlanLifecycle(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")
	bob := registerUser(t, app, "bobby", "bob@example.com")

	var created models.NutritionPlan
	resp := doJSON(t, app, http.MethodPost, "/api/nutrition", map[string]interface{}{
		"name":     "Keto Cut",
		"calories": 1800,
		"protein":  150,
		"carbs":    50,
		"fats":     120,
	}, alice.AccessToken, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, alice.User.ID, created.UserID)

	// Only the owner sees it under my-plans.
	var mine struct {
		Plans []models.NutritionPlan `json:"plans"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/nutrition/my-plans", nil, alice.AccessToken, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, mine.Plans, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/nutrition/my-plans", nil, bob.AccessToken, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, mine.Plans)

	// Non-owner writes are 404 without disclosure.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/nutrition/%d", created.ID), map[string]interface{}{
			"calories": 9999,
		}, bob.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var updated models.NutritionPlan
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/nutrition/%d", created.ID), map[string]interface{}{
			"calories": 2000,
		}, alice.AccessToken, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2000, updated.Calories)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/nutrition/%d", created.ID), nil, alice.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
