package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	Resume   *ResumeHandler
	Payment  *PaymentHandler
	Template *TemplateHandler
	Email    *EmailHandler
}
