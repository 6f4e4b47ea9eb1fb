package authapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, errorResponse{Error: apiError{Code: code, Message: msg}})
}

// writeUnauthorized is the single shape of every authentication failure.
func writeUnauthorized(c *gin.Context) {
	writeError(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
}
