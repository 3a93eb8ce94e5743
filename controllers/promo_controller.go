package controllers

import (
	"net/http"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type PromoController struct {
	Promos *services.PromoService
}

func NewPromoController(promos *services.PromoService) *PromoController {
	return &PromoController{Promos: promos}
}

type validatePromoPayload struct {
	Code          string  `json:"code" binding:"required"`
	BookingAmount float64 `json:"booking_amount" binding:"required,gt=0"`
}

type usePromoPayload struct {
	Code string `json:"code" binding:"required"`
}

type createPromoPayload struct {
	Code             string   `json:"code" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	DiscountType     string   `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue    float64  `json:"discount_value" binding:"required,gt=0"`
	MinBookingAmount *float64 `json:"min_booking_amount"`
	MaxDiscount      *float64 `json:"max_discount"`
	ValidFrom        string   `json:"valid_from" binding:"required,bookdate"`
	ValidUntil       string   `json:"valid_until" binding:"required,bookdate"`
	UsageLimit       *int     `json:"usage_limit"`
}

func (ctrl *PromoController) Validate(c *gin.Context) {
	var payload validatePromoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	result, err := ctrl.Promos.ValidatePromoCode(payload.Code, payload.BookingAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

func (ctrl *PromoController) Use(c *gin.Context) {
	var payload usePromoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	offer, err := ctrl.Promos.UsePromoCode(payload.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

func (ctrl *PromoController) Create(c *gin.Context) {
	var payload createPromoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	validFrom, _ := utils.ParseDate(payload.ValidFrom)
	validUntil, _ := utils.ParseDate(payload.ValidUntil)
	if validUntil.Before(validFrom) {
		utils.JSONError(c, http.StatusBadRequest, "valid_until is before valid_from")
		return
	}

	offer := &models.PromoOffer{
		Code:             payload.Code,
		Name:             payload.Name,
		Description:      payload.Description,
		DiscountType:     payload.DiscountType,
		DiscountValue:    payload.DiscountValue,
		MinBookingAmount: payload.MinBookingAmount,
		MaxDiscount:      payload.MaxDiscount,
		ValidFrom:        validFrom,
		ValidUntil:       validUntil,
		UsageLimit:       payload.UsageLimit,
		Active:           true,
	}
	if err := ctrl.Promos.CreateOffer(offer); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, offer)
}

func (ctrl *PromoController) List(c *gin.Context) {
	offers, err := ctrl.Promos.ListOffers(c.Query("all") == "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}

func (ctrl *PromoController) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Promos.DeactivateOffer(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "active": false})
}
