package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alostudio/internal/shared/apperrors"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errs interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errs,
	})
}

// RespondError maps the shared error taxonomy onto HTTP status codes.
func RespondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		code = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthenticated):
		code = http.StatusUnauthorized
	}
	RespondJSON(c, "error", code, err.Error(), nil, nil)
}
