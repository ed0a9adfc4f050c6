package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/domain"
	apptRepo "github.com/techydad05/nail-artist-website/internal/infra/storage/appointment"
	"github.com/techydad05/nail-artist-website/internal/notify"
	"github.com/techydad05/nail-artist-website/internal/service/appointments/models"
	"github.com/techydad05/nail-artist-website/pkg/ptr"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

type fakeRepo struct {
	byID map[int64]*domain.Appointment
	list []*domain.Appointment

	cancelledID     int64
	cancelledReason string
	updatedID       int64
	updatedStatus   domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.byID[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type recordingEmailSender struct {
	sent []notify.EmailMessage
}

func (r *recordingEmailSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	r.sent = append(r.sent, msg)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func appointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CustomerName:    "Anna Petrova",
		CustomerEmail:   "anna@example.com",
		ServiceID:       3,
		ServiceName:     "Gel Manicure",
		ServicePrice:    45,
		Date:            time.Date(2024, 1, 17, 0, 0, 0, 0, time.Local),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          status,
		Notes:           ptr.Ptr("allergic to acetone"),
	}
}

func newTestService(repo *fakeRepo, sender *recordingEmailSender) *Service {
	return NewService(repo, sender, noopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, domain.StatusConfirmed)}}
	svc := newTestService(repo, &recordingEmailSender{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2024-01-17", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Appointment{}}, &recordingEmailSender{})

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Appointment{
		appointment(1, domain.StatusPending),
		appointment(2, domain.StatusConfirmed),
	}}
	svc := newTestService(repo, &recordingEmailSender{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &recordingEmailSender{})

	bad := "unknown"
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, domain.StatusPending)}}
	sender := &recordingEmailSender{}
	svc := newTestService(repo, sender)

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{CancellationReason: "client request"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, "client request", repo.cancelledReason)

	// Клиент получил письмо об отмене
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "anna@example.com", sender.sent[0].To)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, domain.StatusCompleted)}}
	svc := newTestService(repo, &recordingEmailSender{})

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Appointment{}}, &recordingEmailSender{})

	err := svc.Cancel(context.Background(), 404, &models.CancelAppointmentRequest{})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, domain.StatusPending)}}
	svc := newTestService(repo, &recordingEmailSender{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	tests := []struct {
		name    string
		current domain.AppointmentStatus
		next    string
	}{
		{"completed back to pending", domain.StatusCompleted, "pending"},
		{"completed back to confirmed", domain.StatusCompleted, "confirmed"},
		{"cancelled to pending", domain.StatusCancelled, "pending"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"cancelled to completed", domain.StatusCancelled, "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, tt.current)}}
			svc := newTestService(repo, &recordingEmailSender{})

			err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.next})

			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: appointment(7, domain.StatusPending)}}
	svc := newTestService(repo, &recordingEmailSender{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "archived"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStats(t *testing.T) {
	second := appointment(2, domain.StatusCompleted)
	second.ServiceName = "Nail Art"
	second.Date = time.Date(2024, 1, 18, 0, 0, 0, 0, time.Local)

	repo := &fakeRepo{list: []*domain.Appointment{
		appointment(1, domain.StatusPending),
		second,
		appointment(3, domain.StatusCancelled),
	}}
	svc := newTestService(repo, &recordingEmailSender{})

	resp, err := svc.Stats(context.Background(), &models.StatsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.ByStatus["pending"])
	assert.Equal(t, 1, resp.ByStatus["completed"])
	assert.Equal(t, 1, resp.ByStatus["cancelled"])
	assert.Equal(t, 2, resp.ByDate["2024-01-17"])
	assert.Equal(t, 1, resp.ByDate["2024-01-18"])
	assert.Equal(t, 2, resp.ByService["Gel Manicure"])
	assert.Equal(t, 1, resp.ByService["Nail Art"])
}
