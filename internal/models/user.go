package models

import "time"

type SubscriptionPlan string

const (
	PlanBasic   SubscriptionPlan = "Basic"
	PlanPremium SubscriptionPlan = "Premium"
)

type User struct {
	BaseModel
	Name             string           `gorm:"not null" json:"name"`
	Email            string           `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string           `gorm:"not null" json:"-"`
	ProfileImageURL  string           `json:"profileImageUrl"`
	SubscriptionPlan SubscriptionPlan `gorm:"type:varchar(20);default:'Basic'" json:"subscriptionPlan"`
	EmailVerified    bool             `gorm:"default:false" json:"emailVerified"`

	// Verification token is single-use: both fields are cleared once consumed.
	VerificationToken   string     `json:"-"`
	VerificationExpires *time.Time `json:"-"`
}
