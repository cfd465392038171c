package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondWithError picks the HTTP status from the error kind so that
// services never need to know about HTTP codes.
func RespondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusConflict, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
