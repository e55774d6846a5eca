package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the uniform response envelope. The frontend renders Message inline
// on forms, so every outcome carries one.
type Body struct {
	Message string      `json:"message"`
	User    interface{} `json:"user,omitempty"`
}

// Message writes a bare message body with the given status
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

// OK writes a 200 with a message
func OK(c *gin.Context, message string) {
	Message(c, http.StatusOK, message)
}

// OKWithUser writes a 200 with a message and a user payload
func OKWithUser(c *gin.Context, message string, user interface{}) {
	c.JSON(http.StatusOK, Body{Message: message, User: user})
}

// Created writes a 201 with a message
func Created(c *gin.Context, message string) {
	Message(c, http.StatusCreated, message)
}

// BadRequest writes a 400 with a message
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 with a message
func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

// NotFound writes a 404 with a message
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// Conflict writes a 409 with a message
func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

// TooManyRequests writes a 429 with a message
func TooManyRequests(c *gin.Context, message string) {
	Message(c, http.StatusTooManyRequests, message)
}

// InternalError writes a 500 with a generic message. Details stay server-side.
func InternalError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
