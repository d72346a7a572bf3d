package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marmblshko/Simple-blog/models"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// Redirect reports where the client should navigate next together with a
// user-visible notice. Mutations answer with it on success, and forbidden
// attempts answer with it too: a denied mutation is a safe no-op carrying a
// permission notice, never a hard failure status.
func Redirect(ctx *gin.Context, location, notice string, data interface{}) {
	payload := gin.H{"redirect": location, "notice": notice}
	if data != nil {
		payload["data"] = data
	}
	ctx.JSON(http.StatusOK, payload)
}

// Invalid answers a field-constraint violation the way a re-rendered form
// would: per-field messages, nothing persisted.
func Invalid(ctx *gin.Context, errs models.ValidationErrors) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"code":    42200,
		"message": "validation failed",
		"errors":  errs,
	})
}

// SignInRequired answers an unauthenticated mutating request: no state was
// touched, navigate to sign-in.
func SignInRequired(ctx *gin.Context, code int, message string) {
	ctx.JSON(http.StatusUnauthorized, gin.H{
		"code":     code,
		"message":  message,
		"redirect": "/signin",
	})
}
