package domain

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is a policy failure with a stable machine-readable code. Collaborator
// failures (storage down, etc.) are never wrapped in Error; they surface as
// plain errors and become a 500 at the boundary.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrCommentInvalidID = &Error{Code: "comment_invalid_id", Status: fiber.StatusNotFound, Message: "Invalid comment ID."}
	ErrPostInvalidID    = &Error{Code: "post_invalid_id", Status: fiber.StatusNotFound, Message: "Invalid post ID."}

	ErrForbiddenContext      = &Error{Code: "forbidden_context", Status: fiber.StatusForbidden, Message: "Sorry, you cannot view this resource with edit context."}
	ErrCannotRead            = &Error{Code: "cannot_read", Status: fiber.StatusForbidden, Message: "Sorry, you cannot read this comment."}
	ErrCannotEdit            = &Error{Code: "cannot_edit", Status: fiber.StatusForbidden, Message: "Sorry, you cannot edit this comment."}
	ErrForbiddenStatusChange = &Error{Code: "forbidden_status_change", Status: fiber.StatusForbidden, Message: "Sorry, you are not allowed to change the comment status."}
	ErrCommentClosed         = &Error{Code: "comment_closed", Status: fiber.StatusForbidden, Message: "Sorry, comments are closed for this item."}
)

// NewInvalidParam reports a malformed request parameter by name.
func NewInvalidParam(param string) *Error {
	return &Error{
		Code:    "invalid_param",
		Status:  fiber.StatusBadRequest,
		Message: fmt.Sprintf("Invalid parameter: %s", param),
	}
}

// AsError unwraps a domain Error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
