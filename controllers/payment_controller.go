package controllers

import (
	"net/http"
	"strconv"

	"horizon-hotel-backend/middleware"
	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecordPaymentPayload struct {
	Amount     float64 `json:"amount" binding:"required"`
	Method     string  `json:"method" binding:"required"`
	ReceiptRef string  `json:"receipt_ref"`
}

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// RecordPayment (POST /api/bookings/:id/payments) - staff only.
func (ctrl *PaymentController) RecordPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var payload RecordPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment payload: "+err.Error())
		return
	}

	result, err := ctrl.PaymentSvc.Record(
		uint(id),
		payload.Amount,
		models.PaymentMethod(payload.Method),
		payload.ReceiptRef,
		middleware.ActorFrom(c),
	)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// ListPayments (GET /api/bookings/:id/payments)
func (ctrl *PaymentController) ListPayments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	payments, err := ctrl.PaymentSvc.ListByBooking(uint(id))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

// ReconcileBooking (GET /api/bookings/:id/reconcile) - integrity check
// comparing the cached paid amount against the payment rows.
func (ctrl *PaymentController) ReconcileBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	result, err := ctrl.PaymentSvc.Reconcile(uint(id))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
