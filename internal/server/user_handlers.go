// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	users, err := s.userRepo.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return respondServiceError(c, err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	return c.JSON(fiber.Map{
		"users": summaries,
	})
}

// GetUserByID handles GET /api/users/:id
func (s *Server) GetUserByID(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, getErr := s.userRepo.GetByID(ctx, id)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	workouts, posts, countErr := s.userRepo.CountOwned(ctx, id)
	if countErr != nil {
		return respondServiceError(c, countErr)
	}

	return c.JSON(fiber.Map{
		"user": user.Summary(),
		"stats": fiber.Map{
			"workouts": workouts,
			"posts":    posts,
		},
	})
}

// GetSuggestions handles GET /api/users/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	suggestions, err := s.friendService.SuggestFriends(ctx, userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"users": suggestions,
		},
	})
}

// DeleteMyAccount handles DELETE /api/users/me. Owned workouts and posts are
// deleted with the account; nutrition plans and challenge participations
// remain.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	if _, getErr := s.userRepo.GetByID(ctx, userID); getErr != nil {
		return respondServiceError(c, getErr)
	}

	if revokeErr := s.tokenRepo.RevokeAllForUser(ctx, userID); revokeErr != nil {
		return respondServiceError(c, revokeErr)
	}

	if deleteErr := s.userRepo.Delete(ctx, userID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	s.blacklistAccessToken(c)

	return c.JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
