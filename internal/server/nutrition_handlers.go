// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNutritionPlans handles GET /api/nutrition
func (s *Server) GetNutritionPlans(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)
	search := c.Query("search")

	plans, total, err := s.nutritionRepo.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(paginatedResponse("plans", plans, total, page))
}

// GetMyNutritionPlans handles GET /api/nutrition/my-plans
func (s *Server) GetMyNutritionPlans(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	plans, err := s.nutritionRepo.ListByUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"plans": plans,
	})
}

// CreateNutritionPlan handles POST /api/nutrition
func (s *Server) CreateNutritionPlan(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Calories    int    `json:"calories"`
		Protein     int    `json:"protein"`
		Carbs       int    `json:"carbs"`
		Fats        int    `json:"fats"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	plan := &models.NutritionPlan{
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		UserID:      userID,
	}

	if err := s.nutritionRepo.Create(ctx, plan); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// UpdateNutritionPlan handles PUT /api/nutrition/:id
func (s *Server) UpdateNutritionPlan(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	planID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Calories    int    `json:"calories"`
		Protein     int    `json:"protein"`
		Carbs       int    `json:"carbs"`
		Fats        int    `json:"fats"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Owner-scoped lookup: a missing or foreign plan is 404 either way.
	plan, getErr := s.nutritionRepo.GetOwned(ctx, planID, userID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Description != "" {
		plan.Description = req.Description
	}
	if req.Calories > 0 {
		plan.Calories = req.Calories
	}
	if req.Protein > 0 {
		plan.Protein = req.Protein
	}
	if req.Carbs > 0 {
		plan.Carbs = req.Carbs
	}
	if req.Fats > 0 {
		plan.Fats = req.Fats
	}

	if updateErr := s.nutritionRepo.Update(ctx, plan); updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	return c.JSON(plan)
}

// DeleteNutritionPlan handles DELETE /api/nutrition/:id
func (s *Server) DeleteNutritionPlan(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	planID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.nutritionRepo.GetOwned(ctx, planID, userID); getErr != nil {
		return respondServiceError(c, getErr)
	}

	if deleteErr := s.nutritionRepo.Delete(ctx, planID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	return c.JSON(fiber.Map{
		"message": "Nutrition plan deleted successfully",
	})
}
