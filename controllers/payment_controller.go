package controllers

import (
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type createPaymentPayload struct {
	BookingID uint                   `json:"booking_id" binding:"required"`
	Method    string                 `json:"method" binding:"required,oneof=card cash bank_transfer"`
	PromoCode string                 `json:"promo_code"`
	Details   map[string]interface{} `json:"details"`
}

type failPaymentPayload struct {
	Reason string `json:"reason"`
}

type refundPayload struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (ctrl *PaymentController) Create(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	payment, err := ctrl.Payments.CreatePayment(services.CreatePaymentInput{
		BookingID: payload.BookingID,
		Method:    payload.Method,
		PromoCode: payload.PromoCode,
		Details:   payload.Details,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

// Complete simulates the gateway success callback.
func (ctrl *PaymentController) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payment, err := ctrl.Payments.CompletePayment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

// Fail simulates the gateway failure callback.
func (ctrl *PaymentController) Fail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload failPaymentPayload
	_ = c.ShouldBindJSON(&payload)

	payment, err := ctrl.Payments.FailPayment(id, payload.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

func (ctrl *PaymentController) Refund(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload refundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	payment, err := ctrl.Payments.RefundPayment(id, payload.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

func (ctrl *PaymentController) ListForBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	list, err := ctrl.Payments.ListForBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
