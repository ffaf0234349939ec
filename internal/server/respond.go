package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes carried next to every error message.
const (
	codeInvalidID        = "INVALID_ID"
	codeInvalidBody      = "INVALID_BODY"
	codeMissingField     = "MISSING_REQUIRED_FIELD"
	codeInvalidTitle     = "INVALID_TITLE"
	codeInvalidStatus    = "INVALID_STATUS"
	codeInvalidProjectID = "INVALID_PROJECT_ID"
	codeProjectNotFound  = "PROJECT_NOT_FOUND"
	codeInvalidTaskID    = "INVALID_TASK_ID"
	codeTaskNotFound     = "TASK_NOT_FOUND"
	codeNotFound         = "NOT_FOUND"
	codeInternal         = "INTERNAL"
)

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message, "code": code})
}

// respondInternal logs the underlying error and returns a redacted 500.
func (s *Server) respondInternal(c *gin.Context, err error) {
	s.logger.Error("request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	respondError(c, http.StatusInternalServerError, codeInternal, "internal server error")
}

// notFound writes the standard 404 for a missing resource.
func notFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, codeNotFound, resource+" not found")
}
