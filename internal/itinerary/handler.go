package itinerary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/shared/metrics"
	"trip-planner/internal/shared/server/respond"
	"trip-planner/internal/trips"
)

// Handler serves itinerary planning.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches itinerary routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plan", h.plan)
}

func (h *Handler) plan(c *gin.Context) {
	trip, ok := trips.Bind(c)
	if !ok {
		return
	}
	c.Set("destination", trip.Destination)
	c.Set("style", trip.Style.String())

	it := Generate(trip)
	metrics.IncItineraryGenerated()
	respond.JSON(c, http.StatusOK, it)
}
