// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"gymhum/internal/middleware"
	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)
	search := c.Query("search")

	posts, total, err := s.postRepo.List(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(paginatedResponse("posts", posts, total, page))
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postRepo.GetByID(ctx, id)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	return c.JSON(post)
}

// GetPostsByUsername handles GET /api/posts/user/:username
func (s *Server) GetPostsByUsername(c *fiber.Ctx) error {
	ctx := c.Context()
	username := c.Params("username")

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", username))
	}

	posts, err := s.postRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"user":  user.Summary(),
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	post := &models.Post{
		Content: req.Content,
		UserID:  userID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return respondServiceError(c, err)
	}

	// Load user data for response
	post, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, likeErr := s.postRepo.Like(ctx, postID)
	if likeErr != nil {
		return respondServiceError(c, likeErr)
	}

	middleware.PostLikesTotal.Inc()
	return c.JSON(fiber.Map{
		"likes": likes,
	})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, getErr := s.postRepo.GetByID(ctx, postID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only update your own posts"))
	}

	if req.Content != "" {
		post.Content = req.Content
	}

	if updateErr := s.postRepo.Update(ctx, post); updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postRepo.GetByID(ctx, postID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if post.UserID != userID {
		admin, adminErr := s.isAdmin(c, userID)
		if adminErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(adminErr))
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("You can only delete your own posts"))
		}
	}

	if deleteErr := s.postRepo.Delete(ctx, postID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
