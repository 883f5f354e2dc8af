// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetWorkouts handles GET /api/workouts
func (s *Server) GetWorkouts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)
	search := c.Query("search")

	workouts, total, err := s.workoutRepo.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(paginatedResponse("workouts", workouts, total, page))
}

// GetWorkout handles GET /api/workouts/:id
func (s *Server) GetWorkout(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	workout, getErr := s.workoutRepo.GetByID(ctx, id)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	return c.JSON(workout)
}

// CreateWorkout handles POST /api/workouts
func (s *Server) CreateWorkout(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Duration    int    `json:"duration"`
		Exercises   string `json:"exercises"`
		VideoURL    string `json:"video_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Duration <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and a positive duration are required"))
	}

	workout := &models.Workout{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Exercises:   req.Exercises,
		VideoURL:    req.VideoURL,
		UserID:      userID,
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}

// UpdateWorkout handles PUT /api/workouts/:id
func (s *Server) UpdateWorkout(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Duration    int    `json:"duration"`
		Exercises   string `json:"exercises"`
		VideoURL    string `json:"video_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Owner-scoped lookup: a missing or foreign workout is 404 either way.
	workout, getErr := s.workoutRepo.GetOwned(ctx, workoutID, userID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if req.Name != "" {
		workout.Name = req.Name
	}
	if req.Description != "" {
		workout.Description = req.Description
	}
	if req.Difficulty != "" {
		workout.Difficulty = req.Difficulty
	}
	if req.Duration > 0 {
		workout.Duration = req.Duration
	}
	if req.Exercises != "" {
		workout.Exercises = req.Exercises
	}
	if req.VideoURL != "" {
		workout.VideoURL = req.VideoURL
	}

	if updateErr := s.workoutRepo.Update(ctx, workout); updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	return c.JSON(workout)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func (s *Server) DeleteWorkout(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	workoutID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.workoutRepo.GetOwned(ctx, workoutID, userID); getErr != nil {
		return respondServiceError(c, getErr)
	}

	if deleteErr := s.workoutRepo.Delete(ctx, workoutID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	return c.JSON(fiber.Map{
		"message": "Workout deleted successfully",
	})
}
