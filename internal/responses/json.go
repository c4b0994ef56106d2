package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API serves raw payloads: arrays and objects as-is, and a bare
// {"error": "..."} object on failure. There is no success envelope.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// StoreError surfaces a store failure as a 500 carrying the store's message.
func StoreError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
