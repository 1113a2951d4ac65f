package dto

type CreateOrderRequest struct {
	PlanType string `json:"planType" validate:"required"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest carries the checkout callback fields in the gateway's
// snake_case naming.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	SubscriptionPlan string `json:"subscriptionPlan"`
}
