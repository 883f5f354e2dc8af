// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetChallenges handles GET /api/challenges
func (s *Server) GetChallenges(c *fiber.Ctx) error {
	ctx := c.Context()

	challenges, err := s.challengeRepo.ListActive(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	type challengeWithCount struct {
		models.Challenge
		Participants int64 `json:"participants"`
	}

	out := make([]challengeWithCount, 0, len(challenges))
	for _, challenge := range challenges {
		count, countErr := s.challengeRepo.CountParticipants(ctx, challenge.ID)
		if countErr != nil {
			return respondServiceError(c, countErr)
		}
		out = append(out, challengeWithCount{
			Challenge:    challenge,
			Participants: count,
		})
	}

	return c.JSON(fiber.Map{
		"challenges": out,
	})
}

// JoinChallenge handles POST /api/challenges/:id/join
func (s *Server) JoinChallenge(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	challengeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.challengeRepo.GetByID(ctx, challengeID); getErr != nil {
		return respondServiceError(c, getErr)
	}

	existing, getErr := s.challengeRepo.GetParticipation(ctx, userID, challengeID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Already joined this challenge"))
	}

	participation, joinErr := s.challengeRepo.Join(ctx, userID, challengeID)
	if joinErr != nil {
		return respondServiceError(c, joinErr)
	}

	return c.Status(fiber.StatusCreated).JSON(participation)
}

// GetMyChallenges handles GET /api/challenges/my-challenges
func (s *Server) GetMyChallenges(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	participations, err := s.challengeRepo.ListParticipations(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"challenges": participations,
	})
}

// UpdateChallengeProgress handles PUT /api/challenges/:id/progress
func (s *Server) UpdateChallengeProgress(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	challengeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Progress int `json:"progress"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Progress < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Progress must not be negative"))
	}

	participation, getErr := s.challengeRepo.GetParticipation(ctx, userID, challengeID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	if participation == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Challenge participation", challengeID))
	}

	participation.Progress = req.Progress
	// Completed derives from progress against the challenge target.
	participation.Completed = participation.Progress >= participation.Challenge.Target

	if updateErr := s.challengeRepo.UpdateParticipation(ctx, participation); updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	return c.JSON(participation)
}

// CreateChallenge handles POST /api/challenges (admin only)
func (s *Server) CreateChallenge(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Target      int    `json:"target"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Target <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and a positive target are required"))
	}

	challenge := &models.Challenge{
		Name:        req.Name,
		Description: req.Description,
		Target:      req.Target,
		IsActive:    true,
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}
