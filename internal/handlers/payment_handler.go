package handlers

import (
	"net/http"

	"eventora_backend/internal/middleware"
	"eventora_backend/internal/services"
	"eventora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/checkout-session", h.CreateCheckoutSession)
		payments.POST("/verify", h.Verify)
		payments.GET("/history", h.History)
	}
}

// CreateCheckoutSession godoc
// @Summary Open a checkout session for a pending booking
// @Description The charged amount is the booking's stored server-computed price.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCheckoutRequest true "Booking reference"
// @Success 201 {object} dto.CheckoutResponse
// @Router /payments/checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCheckoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), email, req.BookingID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Verify godoc
// @Summary Confirm a completed checkout session
// @Description Safe to repeat: a session that has already been settled returns the same state.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyPaymentRequest true "Session reference"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.Verify(c.Request.Context(), email, req.SessionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) History(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	items, err := h.paymentService.History(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": items})
}
