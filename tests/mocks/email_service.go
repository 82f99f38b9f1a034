package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendAdminCredentials(ctx context.Context, toEmail, username, password string) error {
	args := m.Called(ctx, toEmail, username, password)
	return args.Error(0)
}
