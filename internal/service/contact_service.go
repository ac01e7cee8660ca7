package service

import (
	"context"
	"log/slog"

	"showcase/internal/mailer"
	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/observability"
	"showcase/internal/repository"
)

// ContactService persists inbound contact messages and relays an email
// notification when a mailer is configured. The record is always written
// first; relay runs asynchronously and its failure never changes the
// response already promised for the persisted write.
type ContactService struct {
	contactRepo repository.ContactRepository
	mail        mailer.Mailer
}

// NewContactService creates a ContactService. A nil mailer disables
// notifications entirely.
func NewContactService(contactRepo repository.ContactRepository, mail mailer.Mailer) *ContactService {
	return &ContactService{contactRepo: contactRepo, mail: mail}
}

// Submit validates and persists a contact message, then kicks off a
// best-effort notification.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.mail != nil {
		go s.notify(msg)
	}

	return msg, nil
}

// notify relays the notification mail. Failures are logged and counted,
// never surfaced to the submitter.
func (s *ContactService) notify(msg *models.ContactMessage) {
	if err := s.mail.SendContactNotification(msg); err != nil {
		observability.MailRelay.WithLabelValues("failure").Inc()
		middleware.Logger.Warn("contact notification mail failed",
			slog.Any("message_id", msg.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.MailRelay.WithLabelValues("success").Inc()
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return s.contactRepo.Delete(ctx, id)
}
