package stays

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/shared/server/respond"
	"trip-planner/internal/trips"
)

// Handler wires stay search routes.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches stay routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/stays", h.search)
}

func (h *Handler) search(c *gin.Context) {
	trip, ok := trips.Bind(c)
	if !ok {
		return
	}
	c.Set("destination", trip.Destination)
	c.Set("style", trip.Style.String())

	resp, err := h.Svc.Recommend(c.Request.Context(), trip)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search stays", nil)
		return
	}
	respond.OK(c, resp)
}
