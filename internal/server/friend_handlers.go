// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/middleware"
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, sendErr := s.friendService.SendFriendRequest(ctx, userID, targetUserID)
	if sendErr != nil {
		middleware.FriendRequestsTotal.WithLabelValues("rejected").Inc()
		// Duplicate-edge validation failures are conflicts, not bad requests.
		if appErr, ok := sendErr.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			if userID == targetUserID {
				return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
			}
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		return respondServiceError(c, sendErr)
	}

	middleware.FriendRequestsTotal.WithLabelValues("sent").Inc()
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.GetPendingRequests(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(requests)
}

// GetSentRequests handles GET /api/friends/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.GetSentRequests(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, acceptErr := s.friendService.AcceptFriendRequest(ctx, userID, requestID)
	if acceptErr != nil {
		if appErr, ok := acceptErr.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		return respondServiceError(c, acceptErr)
	}

	middleware.FriendRequestsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(friendship)
}

// RejectFriendRequest handles POST /api/friends/requests/:requestId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	if _, rejectErr := s.friendService.RejectFriendRequest(ctx, userID, requestID); rejectErr != nil {
		if appErr, ok := rejectErr.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		return respondServiceError(c, rejectErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.GetFriends(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friends)
}

// GetFriendshipStatus handles GET /api/friends/status/:userId
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	status, requestID, friendship, statusErr := s.friendService.GetFriendshipStatus(ctx, userID, targetUserID)
	if statusErr != nil {
		return respondServiceError(c, statusErr)
	}

	return c.JSON(fiber.Map{
		"status":     status,
		"request_id": requestID,
		"friendship": friendship,
	})
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if _, removeErr := s.friendService.RemoveFriend(ctx, userID, targetUserID); removeErr != nil {
		return respondServiceError(c, removeErr)
	}

	return c.SendStatus(fiber.StatusOK)
}
