// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profile. It aggregates the caller's workouts,
// nutrition plans, challenge names, friends, and most recent posts.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	plans, err := s.nutritionRepo.ListByUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	participations, err := s.challengeRepo.ListParticipations(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	challengeNames := make([]string, 0, len(participations))
	for _, p := range participations {
		challengeNames = append(challengeNames, p.Challenge.Name)
	}

	friends, err := s.friendService.GetFriends(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if len(posts) > 5 {
		posts = posts[:5]
	}

	friendSummaries := make([]models.UserSummary, 0, len(friends))
	for i := range friends {
		friendSummaries = append(friendSummaries, friends[i].Summary())
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"workouts":     workouts,
		"plans":        plans,
		"challenges":   challengeNames,
		"friends":      friendSummaries,
		"recent_posts": posts,
	})
}
