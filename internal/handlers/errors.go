package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/lifecycle"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// respondServiceError maps service errors onto API error responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, lifecycle.ErrEmptyTitle):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeEmptyTitle, "Title cannot be empty")
	case errors.Is(err, lifecycle.ErrInvalidStage):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidStage, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidPriority):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidPriority, err.Error())
	case errors.Is(err, services.ErrDetailsRequired):
		apierrors.BadRequest(c, "Details are required")
	case errors.Is(err, services.ErrStoreUnavailable):
		log.Printf("request %s: %v", middleware.GetRequestID(c), err)
		apierrors.ServiceUnavailable(c, "")
	default:
		log.Printf("request %s: %v", middleware.GetRequestID(c), err)
		apierrors.InternalError(c, "")
	}
}
