package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

const (
	premiumAmountPaise = 99900
	premiumCurrency    = "INR"
	premiumPlanType    = "Premium"
)

// PaymentGateway abstracts the Razorpay client for testing.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type PaymentService interface {
	CreateOrder(ctx context.Context, user *models.User, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, user *models.User, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	History(ctx context.Context, user *models.User) ([]models.Payment, error)
	OrderDetails(ctx context.Context, user *models.User, orderID string) (*models.Payment, error)
}

type PaymentServiceImpl struct {
	payments repositories.PaymentRepository
	users    repositories.UserRepository
	gateway  PaymentGateway
	keyID    string
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	users repositories.UserRepository,
	gateway PaymentGateway,
	keyID string,
) PaymentService {
	return &PaymentServiceImpl{
		payments: payments,
		users:    users,
		gateway:  gateway,
		keyID:    keyID,
	}
}

// CreateOrder opens a gateway order for the Premium upgrade and records it
// locally in the created state.
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, user *models.User, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if !strings.EqualFold(req.PlanType, premiumPlanType) {
		return nil, apperrors.ErrInvalidPlanType
	}

	receipt := "Premium-" + uuid.NewString()[:8]
	order, err := s.gateway.CreateOrder(ctx, premiumAmountPaise, premiumCurrency, receipt)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "payment", "Failed to create payment order")
	}

	record := &models.Payment{
		UserID:         user.ID,
		GatewayOrderID: order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		PlanType:       premiumPlanType,
		Status:         models.PaymentStatusCreated,
		Receipt:        receipt,
	}
	if err := s.payments.Create(ctx, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "payment order created",
		"user_id", user.ID, "order_id", order.ID, "amount", order.Amount)

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.keyID,
	}, nil
}

// VerifyPayment checks the checkout signature, marks the order paid and
// promotes the owner to Premium. A bad signature changes nothing. Re-verifying
// an already paid order with a valid signature is a no-op success.
func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, user *models.User, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	record, err := s.payments.FindByUserIDAndOrderID(ctx, user.ID, req.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		logger.CtxWarn(ctx, "payment signature mismatch",
			"user_id", user.ID, "order_id", req.OrderID)
		return nil, apperrors.ErrInvalidPaymentSignature
	}

	if record.Status != models.PaymentStatusPaid {
		record.GatewayPaymentID = req.PaymentID
		record.GatewaySignature = req.Signature
		record.Status = models.PaymentStatusPaid
		if err := s.payments.Update(ctx, record); err != nil {
			return nil, apperrors.InternalError(err)
		}

		if err := s.users.UpdatePlan(ctx, user.ID, models.PlanPremium); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.SubscriptionPlan = models.PlanPremium

		logger.CtxInfo(ctx, "payment verified, plan upgraded",
			"user_id", user.ID, "order_id", req.OrderID)
	}

	return &dto.VerifyPaymentResponse{
		Success:          true,
		Message:          "Payment verified successfully",
		SubscriptionPlan: string(models.PlanPremium),
	}, nil
}

func (s *PaymentServiceImpl) History(ctx context.Context, user *models.User) ([]models.Payment, error) {
	payments, err := s.payments.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

// OrderDetails is owner-scoped: another user's order reads as not found.
func (s *PaymentServiceImpl) OrderDetails(ctx context.Context, user *models.User, orderID string) (*models.Payment, error) {
	record, err := s.payments.FindByUserIDAndOrderID(ctx, user.ID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}
