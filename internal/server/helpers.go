// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"gymhum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/per_page query parameters.
type Pagination struct {
	Page    int
	PerPage int
}

const (
	maxPerPage = 100
)

// parsePagination extracts page and per_page query parameters with the given
// default page size.
func parsePagination(c *fiber.Ctx, defaultPerPage int) Pagination {
	page := c.QueryInt("page", 1)
	if page <= 0 {
		page = 1
	}

	perPage := c.QueryInt("per_page", defaultPerPage)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Pagination{
		Page:    page,
		PerPage: perPage,
	}
}

// Limit returns the page size for repository queries.
func (p Pagination) Limit() int {
	return p.PerPage
}

// Offset returns the row offset for repository queries.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pages computes the total page count for the given row total.
func (p Pagination) Pages(total int64) int {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// paginatedResponse builds the standard list envelope: the items under a
// resource-named key plus total/pages/current_page metadata.
func paginatedResponse(key string, items interface{}, total int64, p Pagination) fiber.Map {
	return fiber.Map{
		key:            items,
		"total":        total,
		"pages":        p.Pages(total),
		"current_page": p.Page,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "userId" -> "Invalid user ID").
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	// Split on camelCase boundary before the trailing "Id" suffix.
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// respondServiceError maps an AppError returned by a service or repository
// to an HTTP status by its code.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// isAdmin checks whether the given user has admin privileges.
func (s *Server) isAdmin(c *fiber.Ctx, userID uint) (bool, error) {
	return s.isAdminByUserID(c.Context(), userID)
}

func (s *Server) isAdminByUserID(ctx context.Context, userID uint) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_admin").First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
