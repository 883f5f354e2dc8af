package server

import (
	"net/http"
	"testing"

	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMutationsRequireAdmin(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	alice := registerUser(t, app, "alice", "alice@example.com")

	body := map[string]interface{}{
		"name":     "Kettlebell 16kg",
		"price":    49.99,
		"category": "Equipment",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/products", body, alice.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", alice.User.ID).
		Update("is_admin", true).Error)

	var created models.Product
	resp = doJSON(t, app, http.MethodPost, "/api/products", body, alice.AccessToken, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Kettlebell 16kg", created.Name)
}

func TestProductListFilters(t *testing.T) {
	t.Parallel()
	_, app, db := newTestServer(t)

	products := []models.Product{
		{Name: "Leg Press Machine", Price: 1299.99, Category: "Equipment"},
		{Name: "Gym Recliner", Price: 499.50, Category: "Equipment"},
		{Name: "Training Leggings", Price: 74.99, Category: "Apparel"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	var page struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}

	resp := doJSON(t, app, http.MethodGet, "/api/products?category=Equipment", nil, "", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), page.Total)

	// Search and category combine.
	resp = doJSON(t, app, http.MethodGet, "/api/products?category=Equipment&search=leg", nil, "", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Leg Press Machine", page.Products[0].Name)
}
