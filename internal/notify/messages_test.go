package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		CustomerName:    "Anna Petrova",
		CustomerEmail:   "anna@example.com",
		ServiceName:     "Gel Manicure",
		ServicePrice:    45,
		Date:            time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	}
}

func TestConfirmationEmail(t *testing.T) {
	msg := ConfirmationEmail(testAppointment())

	assert.Equal(t, "anna@example.com", msg.To)
	assert.Equal(t, "Anna Petrova", msg.ToName)
	assert.Equal(t, "Appointment booked: Gel Manicure on 2024-03-20", msg.Subject)
	assert.Contains(t, msg.Body, "Gel Manicure")
	assert.Contains(t, msg.Body, "2024-03-20")
	assert.Contains(t, msg.Body, "10:00")
	assert.Contains(t, msg.Body, "$45.00")
}

func TestCancellationEmail(t *testing.T) {
	msg := CancellationEmail(testAppointment(), "salon closed for renovation")

	assert.Equal(t, "anna@example.com", msg.To)
	assert.Equal(t, "Appointment cancelled: 2024-03-20", msg.Subject)
	assert.Contains(t, msg.Body, "salon closed for renovation")
}

func TestCancellationEmail_NoReason(t *testing.T) {
	msg := CancellationEmail(testAppointment(), "")

	assert.NotContains(t, msg.Body, "Reason:")
}

func TestStubEmailSender(t *testing.T) {
	sender := NewStubEmailSender(noopLogger{})

	err := sender.Send(context.Background(), ConfirmationEmail(testAppointment()))
	require.NoError(t, err)
}

func TestNewSendGridSender_NoAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{}, noopLogger{})

	assert.Nil(t, sender)
}
