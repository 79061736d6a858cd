package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quotienthq/quotient-api/internal/db"
)

// AccountIDHeader identifies the acting account on authenticated routes. The
// gateway in front of the API validates the session and injects it.
const AccountIDHeader = "X-Account-ID"

// CommonServices holds dependencies shared across handlers.
type CommonServices struct {
	DB db.Querier
}

// NewCommonServices creates the shared handler dependencies.
func NewCommonServices(queries db.Querier) *CommonServices {
	return &CommonServices{DB: queries}
}

// accountIDFromHeader extracts the acting account id, writing a 400 response
// and returning false when it is missing or malformed.
func accountIDFromHeader(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(AccountIDHeader)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + AccountIDHeader + " header"})
		return uuid.Nil, false
	}
	accountID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return uuid.Nil, false
	}
	return accountID, true
}

// parseLimit reads the limit query parameter, clamped to 200.
func parseLimit(c *gin.Context, fallback int32) int32 {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > 200 {
		return 200
	}
	return int32(n)
}
