package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/shopdarven/storefront/internal/api/middleware"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/pkg/sendgrid"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) error
}

type contactService struct {
	email  sendgrid.EmailService
	inbox  string
	policy *bluemonday.Policy
}

func NewContactService(email sendgrid.EmailService, inbox string) ContactService {
	return &contactService{email: email, inbox: inbox, policy: bluemonday.StrictPolicy()}
}

// Submit emails a contact form message to the shop inbox with the sender as reply-to.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	logger := middleware.LoggerFromContext(ctx)

	if s.email == nil || s.inbox == "" {
		return appErrors.InternalError("Contact form is not configured")
	}

	name := sanitizeText(s.policy, req.Name)
	phone := sanitizeText(s.policy, req.Phone)
	message := sanitizeText(s.policy, req.Message)

	if name == "" || message == "" {
		return appErrors.ValidationError("Validation failed").WithDetail("Field name and message must contain text")
	}

	email := &models.EmailNotificationRequest{
		To:      s.inbox,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact form: %s", name),
		Content: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s\n", name, req.Email, phone, message),
	}

	if err := s.email.Send(ctx, email); err != nil {
		logger.Error("Failed to send contact message", slog.String("error", err.Error()))
		return appErrors.ThirdPartyError("Failed to send message").WithError(err)
	}

	logger.Info("Contact message sent", slog.String("replyTo", req.Email))

	return nil
}
