package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
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
	{
		payments.POST("/create-order", h.CreateOrder)
		payments.POST("/verify", h.Verify)
		payments.GET("/history", h.History)
		payments.GET("/order/:orderId", h.OrderDetails)
	}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateOrder(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) History(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.History(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) OrderDetails(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	record, err := h.paymentService.OrderDetails(c.Request.Context(), user, c.Param("orderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
