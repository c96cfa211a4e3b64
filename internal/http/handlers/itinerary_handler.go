// README: Itinerary handler; binds the trip request, applies wire defaults and runs the composer.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/types"
)

// Composer builds an itinerary envelope. *itinerary.Service satisfies it.
type Composer interface {
	Compose(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error)
}

type ItineraryHandler struct {
	composer Composer
	logger   *zap.Logger
}

func NewItineraryHandler(composer Composer, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{composer: composer, logger: logger}
}

// generateReq is the wire shape. Pointers tell an absent field from a zero one.
type generateReq struct {
	FromLocation      string            `json:"from_location" binding:"required"`
	ToLocation        string            `json:"to_location" binding:"required"`
	StartDate         string            `json:"start_date" binding:"required"`
	EndDate           string            `json:"end_date" binding:"required"`
	Preferences       types.Preferences `json:"preferences"`
	NumberOfTravelers *int              `json:"number_of_travelers"`
	IncludeWeather    *bool             `json:"include_weather"`
	IncludeLocalTips  *bool             `json:"include_local_tips"`
}

func (r generateReq) toTripRequest() types.TripRequest {
	out := types.TripRequest{
		FromLocation:      strings.TrimSpace(r.FromLocation),
		ToLocation:        strings.TrimSpace(r.ToLocation),
		StartDate:         strings.TrimSpace(r.StartDate),
		EndDate:           strings.TrimSpace(r.EndDate),
		Preferences:       r.Preferences,
		NumberOfTravelers: 1,
		IncludeWeather:    true,
		IncludeLocalTips:  true,
	}
	if r.NumberOfTravelers != nil {
		out.NumberOfTravelers = *r.NumberOfTravelers
	}
	if r.IncludeWeather != nil {
		out.IncludeWeather = *r.IncludeWeather
	}
	if r.IncludeLocalTips != nil {
		out.IncludeLocalTips = *r.IncludeLocalTips
	}
	return out
}

// Generate handles POST /api/v1/generate-itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var body generateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	req := body.toTripRequest()
	if req.FromLocation == "" || req.ToLocation == "" {
		writeError(c, http.StatusBadRequest, "from_location and to_location must not be blank")
		return
	}
	if req.NumberOfTravelers < 1 {
		writeError(c, http.StatusBadRequest, "number_of_travelers must be at least 1")
		return
	}

	h.logger.Info("received itinerary request",
		zap.String("from", req.FromLocation),
		zap.String("to", req.ToLocation),
	)

	resp, err := h.composer.Compose(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("itinerary generation failed", zap.Error(err))
		writeComposeError(c, err)
		return
	}

	h.logger.Info("itinerary generated", zap.Int("days", resp.RequestDetails.DurationDays))
	writeJSON(c, http.StatusOK, resp)
}
