package notify

import (
	"fmt"

	"github.com/techydad05/nail-artist-website/internal/domain"
)

// ConfirmationEmail собирает письмо-подтверждение созданной записи
func ConfirmationEmail(appt *domain.Appointment) EmailMessage {
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your appointment has been booked!\n\n"+
			"Service: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Duration: %d minutes\n"+
			"Price: $%.2f\n\n"+
			"We will confirm your appointment shortly. "+
			"If you need to reschedule, please reply to this email.\n\n"+
			"See you soon!",
		appt.CustomerName,
		appt.ServiceName,
		appt.DateString(),
		appt.StartTime,
		appt.DurationMinutes,
		appt.ServicePrice,
	)

	return EmailMessage{
		To:      appt.CustomerEmail,
		ToName:  appt.CustomerName,
		Subject: fmt.Sprintf("Appointment booked: %s on %s", appt.ServiceName, appt.DateString()),
		Body:    body,
	}
}

// CancellationEmail собирает письмо об отмене записи
func CancellationEmail(appt *domain.Appointment, reason string) EmailMessage {
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your appointment for %s on %s at %s has been cancelled.\n",
		appt.CustomerName,
		appt.ServiceName,
		appt.DateString(),
		appt.StartTime,
	)
	if reason != "" {
		body += fmt.Sprintf("\nReason: %s\n", reason)
	}
	body += "\nYou can book a new appointment any time on our website."

	return EmailMessage{
		To:      appt.CustomerEmail,
		ToName:  appt.CustomerName,
		Subject: fmt.Sprintf("Appointment cancelled: %s", appt.DateString()),
		Body:    body,
	}
}
