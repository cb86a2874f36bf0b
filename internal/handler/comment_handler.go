package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pressroom/internal/domain"
	"pressroom/internal/middleware"
	"pressroom/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	rctx, ok := domain.ParseRequestContext(c.Query("context"))
	if !ok {
		return domain.NewInvalidParam("context")
	}

	params, err := listParams(c)
	if err != nil {
		return err
	}

	result, err := h.commentService.List(c.Context(), middleware.GetCaller(c), params, rctx)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Get(c *fiber.Ctx) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	rctx, ok := domain.ParseRequestContext(c.Query("context"))
	if !ok {
		return domain.NewInvalidParam("context")
	}

	result, err := h.commentService.Get(c.Context(), middleware.GetCaller(c), commentID, rctx)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.Create(c.Context(), middleware.GetCaller(c), input, requestMeta(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.Update(c.Context(), middleware.GetCaller(c), commentID, input, requestMeta(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	force := c.QueryBool("force", false)

	result, err := h.commentService.Delete(c.Context(), middleware.GetCaller(c), commentID, force, requestMeta(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) AuditTrail(c *fiber.Ctx) error {
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.commentService.AuditTrail(c.Context(), middleware.GetCaller(c), commentID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// commentIDParam parses the path id. Routes only match numeric-looking ids,
// so anything unparsable is reported the same way as an unknown comment.
func commentIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrCommentInvalidID
	}
	return id, nil
}

func listParams(c *fiber.Ctx) (domain.ListCommentsParams, error) {
	var params domain.ListCommentsParams

	for name, target := range map[string]*int64{
		"post":   &params.Post,
		"author": &params.Author,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return params, domain.NewInvalidParam(name)
		}
		*target = v
	}

	for name, target := range map[string]*int{
		"page":     &params.Page,
		"per_page": &params.PageSize,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, domain.NewInvalidParam(name)
		}
		*target = v
	}

	params.Status = c.Query("status")
	params.Search = c.Query("search")
	params.Order = c.Query("order")
	params.OrderBy = c.Query("orderby")

	return params, nil
}

func requestMeta(c *fiber.Ctx) comment.RequestMeta {
	return comment.RequestMeta{
		IPAddress: middleware.GetClientIP(c),
		UserAgent: middleware.GetUserAgent(c),
	}
}
