package rest

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// respondError classifies err and writes it. Server-side failures are logged with their cause.
func respondError(c *gin.Context, err error, message string) {
	apiErr := apierrors.FromError(err, message)
	status := apiErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("code", string(apiErr.Code)))
	}
	c.AbortWithStatusJSON(status, apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	apiErr := apierrors.NewBadRequestError(message, details...)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}

// respondValidationError responds with a validation error naming the failing field
func respondValidationError(c *gin.Context, field string) {
	apiErr := apierrors.NewValidationError(field)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string) {
	apiErr := apierrors.NewForbiddenError(message)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}

// respondEntity writes a single entity with an ETag computed over its canonical JSON.
// A matching If-None-Match yields 304 without a body.
func (h *handler) respondEntity(c *gin.Context, entity interface{}) {
	body, err := h.json.Marshal(entity)
	if err != nil {
		respondError(c, err, "Failed to encode response")
		return
	}

	canonical, err := h.jcs.Transform(body)
	if err != nil {
		// the body is still valid, serve it without a validator
		logger.WarnCtx(c.Request.Context(), "failed to canonicalize response", zap.Error(err))
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	sum := sha256.Sum256(canonical)
	etag := `"` + hex.EncodeToString(sum[:]) + `"`
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", canonical)
}
