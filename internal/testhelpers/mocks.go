package testhelpers

import (
	"github.com/stretchr/testify/mock"

	"github.com/beldyconnect/backend/internal/models"
)

// MockEmailService records notification calls instead of sending mail.
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func (m *MockEmailService) SendOrderNotification(order *models.Order, user *models.User) error {
	args := m.Called(order, user)
	return args.Error(0)
}

func (m *MockEmailService) SendFeedbackNotification(feedback *models.Feedback, user *models.User) error {
	args := m.Called(feedback, user)
	return args.Error(0)
}
