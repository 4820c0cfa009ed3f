package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/middleware"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createVoyageRequest struct {
	HotelID    string    `json:"hotel_id"`
	RoomID     string    `json:"room_id"`
	FlightID   string    `json:"flight_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	SeatNumber string    `json:"seat_number,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/voyages", h.listWithVoyages)
	router.POST("/voyages", middleware.RequireUser(), h.createVoyage)
	router.POST("/:type/:id/cancel", h.cancel)
	router.POST("/:type/:id/confirm", h.confirm)
	router.DELETE("/:type/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	res := h.service.GetCombinedBookings(c.Request.Context())
	c.JSON(httpStatus(res.Success, res.Code, http.StatusOK), res)
}

func (h *BookingHandler) listWithVoyages(c *gin.Context) {
	res := h.service.GetCombinedBookingsWithVoyages(c.Request.Context())
	c.JSON(httpStatus(res.Success, res.Code, http.StatusOK), res)
}

func (h *BookingHandler) createVoyage(c *gin.Context) {
	var req createVoyageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, booking.Result{
			Success: false,
			Message: "Invalid request body",
			Code:    booking.CodeValidation,
		})
		return
	}

	res := h.service.CreateVoyageBooking(c.Request.Context(), booking.CreateVoyageInput{
		UserID:     middleware.UserID(c),
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		FlightID:   req.FlightID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		SeatNumber: req.SeatNumber,
	})
	c.JSON(httpStatus(res.Success, res.Code, http.StatusCreated), res)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	res := h.service.CancelBooking(c.Request.Context(), c.Param("id"), bookingType(c))
	c.JSON(httpStatus(res.Success, res.Code, http.StatusOK), res)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	res := h.service.ConfirmBooking(c.Request.Context(), c.Param("id"), bookingType(c))
	c.JSON(httpStatus(res.Success, res.Code, http.StatusOK), res)
}

func (h *BookingHandler) delete(c *gin.Context) {
	res := h.service.DeleteBooking(c.Request.Context(), c.Param("id"), bookingType(c))
	c.JSON(httpStatus(res.Success, res.Code, http.StatusOK), res)
}

func bookingType(c *gin.Context) domain.BookingType {
	return domain.BookingType(strings.ToUpper(c.Param("type")))
}

func httpStatus(success bool, code string, okStatus int) int {
	if success {
		return okStatus
	}
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeNoSeats:
		return http.StatusConflict
	case booking.CodeUnauthorized:
		return http.StatusUnauthorized
	case booking.CodeValidation, booking.CodeMissingID, booking.CodeInvalidVoyageID, booking.CodeInvalidType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
