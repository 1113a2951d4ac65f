package models

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment tracks one gateway order. Status moves created -> paid exactly
// once; there is no cancellation path.
type Payment struct {
	BaseModel
	UserID           string        `gorm:"type:uuid;not null;index" json:"userId"`
	GatewayOrderID   string        `gorm:"uniqueIndex;not null" json:"razorpayOrderId"`
	GatewayPaymentID string        `json:"razorpayPaymentId"`
	GatewaySignature string        `json:"-"`
	Amount           int64         `gorm:"not null" json:"amount"` // minor units (paise)
	Currency         string        `gorm:"type:varchar(8);not null" json:"currency"`
	PlanType         string        `gorm:"type:varchar(20)" json:"planType"`
	Status           PaymentStatus `gorm:"type:varchar(20);default:'created'" json:"status"`
	Receipt          string        `json:"receipt"`
}
