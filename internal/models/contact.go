package models

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=40"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type EmailNotificationRequest struct {
	To          string
	ReplyTo     string
	Subject     string
	Content     string
	HTMLContent string
}
