package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-catalog/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{name: "timeout", err: fmt.Errorf("%w: NFTByID", domain.ErrUpstreamTimeout), wantCode: ErrCodeUpstreamTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantCode: ErrCodeUpstreamTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "unavailable", err: fmt.Errorf("%w: 500", domain.ErrUpstreamUnavailable), wantCode: ErrCodeUpstreamError, wantStatus: http.StatusBadGateway},
		{name: "not found", err: domain.ErrNFTNotFound, wantCode: ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "validation passthrough", err: NewValidationError("limit"), wantCode: ErrCodeValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "anything else", err: stderrors.New("disk on fire"), wantCode: ErrCodeInternalError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err, "Failed")
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus())
		})
	}
}

func TestAPIError_HidesCause(t *testing.T) {
	cause := stderrors.New("password=secret")
	apiErr := NewInternalError("Failed to load").WithCause(cause)

	assert.NotContains(t, apiErr.Error(), "secret")
	assert.ErrorIs(t, apiErr, cause)
	assert.Nil(t, FromError(nil, "x"))
}
