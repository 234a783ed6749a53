package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"codemate/app/middlewares"
	"codemate/app/models"
	"codemate/app/services"
)

// UserController handles user-scoped listings: received requests,
// connections and the discovery feed
type UserController struct {
	requestService *services.RequestService
}

// NewUserController creates a new user controller instance
func NewUserController(requestService *services.RequestService) *UserController {
	return &UserController{
		requestService: requestService,
	}
}

// GetReceivedRequests handles GET /api/user/requests/received
func (c *UserController) GetReceivedRequests(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	requests, err := c.requestService.GetReceivedRequests(ctx.Context(), user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error fetching received requests",
		})
	}

	return ctx.JSON(fiber.Map{
		"status": "success",
		"count":  len(requests),
		"data":   requests,
	})
}

// GetConnections handles GET /api/user/connections
func (c *UserController) GetConnections(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	connections, err := c.requestService.GetConnections(ctx.Context(), user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error fetching connections",
		})
	}

	return ctx.JSON(fiber.Map{
		"status": "success",
		"count":  len(connections),
		"data":   connections,
	})
}

// GetFeed handles GET /api/user/feed?page=&limit=&skills=&gender=
func (c *UserController) GetFeed(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	query := models.FeedQuery{
		Page:   ctx.QueryInt("page", 1),
		Limit:  ctx.QueryInt("limit", 10),
		Gender: ctx.Query("gender"),
	}
	if skills := ctx.Query("skills"); skills != "" {
		query.Skills = strings.Split(skills, ",")
	}

	feed, err := c.requestService.GetFeed(ctx.Context(), user.ID, query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error fetching user feed",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":      "success",
		"count":       feed.Count,
		"total":       feed.Total,
		"currentPage": feed.CurrentPage,
		"totalPages":  feed.TotalPages,
		"data":        feed.Users,
	})
}
