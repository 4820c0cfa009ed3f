package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service catalog.CatalogUseCase
	log     *zap.Logger
}

func NewFlightHandler(service catalog.CatalogUseCase, log *zap.Logger) *FlightHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		h.log.Error("list flights", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch flights"})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id := c.Param("id")
	flight, err := h.service.GetFlight(c.Request.Context(), id)
	if errors.Is(err, domain.ErrResourceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}
	if err != nil {
		h.log.Error("get flight", zap.String("flight_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch flight"})
		return
	}
	c.JSON(http.StatusOK, flight)
}
