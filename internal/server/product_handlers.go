// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProducts handles GET /api/products
func (s *Server) GetProducts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)
	search := c.Query("search")
	category := c.Query("category")

	products, total, err := s.productRepo.List(ctx, search, category, page.Limit(), page.Offset())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(paginatedResponse("products", products, total, page))
}

// GetProduct handles GET /api/products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, getErr := s.productRepo.GetByID(ctx, id)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	return c.JSON(product)
}

// CreateProduct handles POST /api/products (admin only)
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name     string  `json:"name"`
		Features string  `json:"features"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		ImageURL string  `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Price <= 0 || req.Category == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, category, and a positive price are required"))
	}

	product := &models.Product{
		Name:     req.Name,
		Features: req.Features,
		Price:    req.Price,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /api/products/:id (admin only)
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	ctx := c.Context()
	productID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name     string  `json:"name"`
		Features string  `json:"features"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		ImageURL string  `json:"image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, getErr := s.productRepo.GetByID(ctx, productID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Features != "" {
		product.Features = req.Features
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if updateErr := s.productRepo.Update(ctx, product); updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/products/:id (admin only)
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	ctx := c.Context()
	productID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.productRepo.GetByID(ctx, productID); getErr != nil {
		return respondServiceError(c, getErr)
	}

	if deleteErr := s.productRepo.Delete(ctx, productID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
