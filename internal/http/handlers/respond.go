package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All error responses share one shape: {"error": "<message>"} with an
// optional "details" member for validation failures.

func RespondError(ctx *gin.Context, status int, message string, details interface{}) {
	body := gin.H{"error": message}

	if details != nil {
		body["details"] = details
	}

	ctx.JSON(status, body)
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, message, details)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusUnauthorized, message, nil)
}

func RespondForbidden(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusForbidden, message, nil)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message, nil)
}

func RespondConflict(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusConflict, message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, message, nil)
}
