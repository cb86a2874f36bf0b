package handler

import (
	"github.com/gofiber/fiber/v2"

	"pressroom/internal/domain"
	"pressroom/internal/service"
)

type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Comment *CommentHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(services.Auth),
		User:    NewUserHandler(),
		Comment: NewCommentHandler(services.Comment),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.PaginationParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("per_page", 10),
	}
	params.Validate()
	return params
}
