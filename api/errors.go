package api

import (
	"errors"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// respondError writes err as the JSON error body and aborts the chain.
// Errors outside the errs taxonomy are treated as internal and only logged.
func respondError(c *gin.Context, err error) {
	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		appErr = errs.Internal(err)
	}
	if appErr.Kind == errs.KindInternal {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	}

	c.AbortWithStatusJSON(errs.HTTPStatus(appErr.Kind), errorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
