package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"civic-redressal/internal/config"
)

type Service interface {
	// SendAdminCredentials delivers the initial username/password to a
	// newly provisioned admin account.
	SendAdminCredentials(ctx context.Context, toEmail, username, password string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &service{
		client: client,
		config: cfg,
	}
}

func (s *service) SendAdminCredentials(ctx context.Context, toEmail, username, password string) error {
	html := fmt.Sprintf(`
		<h2>Your admin account is ready</h2>
		<p>An administrator account has been created for you on the civic complaint portal.</p>
		<p>Username: <strong>%s</strong><br>Temporary password: <strong>%s</strong></p>
		<p>You will be asked to change this password on first login.</p>`,
		username, password)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Civic Redressal <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: "Your admin account credentials",
	}

	_, err := s.client.Emails.Send(params)
	return err
}
