package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes the uniform error body. The message is
// human-readable; no internal identifiers or stack traces leak through.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"status": "error", "message": msg})
}

// requireID extracts and parses the id parameter, writing the 412 response
// itself when it is missing or not an integer.
func requireID(c *gin.Context, missingMsg string) (uint, bool) {
	raw, ok := lookupParam(c, "id")
	if !ok {
		respondError(c, http.StatusPreconditionFailed, missingMsg)
		return 0, false
	}
	id, err := parseID(raw)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, "the provided identifier is not an integer")
		return 0, false
	}
	return id, true
}
