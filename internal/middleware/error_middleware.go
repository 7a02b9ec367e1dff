package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
	"github.com/yigit/schoolapi/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled error while serving request")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// errorDetailFor maps an error to its HTTP status and response detail
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var ce *apperrors.CustomError
	message := err.Error()

	var (
		status int
		code   dto.ErrorCode
	)
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status, code = http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrRelatedNotFound):
		status, code = http.StatusBadRequest, dto.ErrorCodeRelatedNotFound
	case errors.Is(err, apperrors.ErrResourceHasRelations):
		status, code = http.StatusBadRequest, dto.ErrorCodeResourceHasRelations
	case errors.Is(err, apperrors.ErrPersistence):
		status, code = http.StatusBadRequest, dto.ErrorCodeResourceInvalid
	default:
		// never leak internals
		status, code = http.StatusInternalServerError, dto.ErrorCodeInternalServer
		message = "Internal server error"
	}

	detail := dto.NewErrorDetail(code, message)
	if status == http.StatusInternalServerError {
		return status, detail.WithSeverity(dto.ErrorSeverityCritical)
	}
	if field := apperrors.FieldOf(err); field != "" {
		detail = detail.WithField(field)
	}
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		detail = detail.WithDetails(ce.Details)
	}
	return status, detail
}

// ErrorHandler recovers from panics and turns them into the standard 500 response
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
				WithSeverity(dto.ErrorSeverityCritical)))
	})
}

// NoRoute renders unknown paths with the standard error body
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
	}
}
