package dto

type TemplatesResponse struct {
	AvailableTemplates []string `json:"availableTemplates"`
	AllTemplates       []string `json:"allTemplates"`
	SubscriptionPlan   string   `json:"subscriptionPlan"`
	IsPremium          bool     `json:"isPremium"`
}
