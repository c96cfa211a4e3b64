// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaklokare24/travel-agent/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeComposeError maps a composition failure to its status. Anything not
// attributable to the request is a 500.
func writeComposeError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, itinerary.ErrInvalidDateRange):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, fmt.Sprintf("Error generating itinerary: %v", err))
	}
}
