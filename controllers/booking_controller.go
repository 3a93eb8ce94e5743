package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
	Pricing  *services.PricingService
	Avail    *services.AvailabilityService
}

func NewBookingController(bookings *services.BookingService, pricing *services.PricingService, avail *services.AvailabilityService) *BookingController {
	return &BookingController{Bookings: bookings, Pricing: pricing, Avail: avail}
}

type createBookingPayload struct {
	RoomTypeID      uint    `json:"room_type_id" binding:"required"`
	CheckIn         string  `json:"check_in" binding:"required,bookdate"`
	CheckOut        string  `json:"check_out" binding:"required,bookdate"`
	Guests          int     `json:"guests" binding:"required,min=1"`
	SpecialRequests *string `json:"special_requests"`
}

type updateBookingPayload struct {
	RoomID          *uint   `json:"room_id"`
	Status          *string `json:"status"`
	SpecialRequests *string `json:"special_requests"`
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	checkIn, _ := utils.ParseDate(payload.CheckIn)
	checkOut, _ := utils.ParseDate(payload.CheckOut)

	booking, err := ctrl.Bookings.CreateBooking(services.CreateBookingInput{
		UserID:          userID,
		RoomTypeID:      payload.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.GetBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ListBookings returns the caller's bookings; admins see everything.
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var filter *uint
	if isAdmin, _ := c.Get(middleware.ContextIsAdmin); isAdmin != true {
		filter = &userID
	}

	list, err := ctrl.Bookings.ListBookings(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	booking, err := ctrl.Bookings.UpdateBooking(id, services.UpdateBookingInput{
		RoomID:          payload.RoomID,
		Status:          payload.Status,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.CancelBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.transition(c, models.BookingCheckedIn)
}

func (ctrl *BookingController) CheckOut(c *gin.Context) {
	ctrl.transition(c, models.BookingCheckedOut)
}

func (ctrl *BookingController) Complete(c *gin.Context) {
	ctrl.transition(c, models.BookingCompleted)
}

func (ctrl *BookingController) transition(c *gin.Context, status string) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Transition(id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckAvailability answers GET /room-types/:id/availability?check_in=&check_out=
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	available, err := ctrl.Avail.IsAvailable(id, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}

// CalculatePrice answers GET /room-types/:id/price?check_in=&check_out=
func (ctrl *BookingController) CalculatePrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := ctrl.Pricing.QuotePrice(id, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}
