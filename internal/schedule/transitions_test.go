package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techydad05/nail-artist-website/internal/domain"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current domain.AppointmentStatus
		next    domain.AppointmentStatus
		want    bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusCompleted, true},
		{domain.StatusConfirmed, domain.StatusConfirmed, true},
		{domain.StatusConfirmed, domain.StatusCompleted, true},
		{domain.StatusCompleted, domain.StatusPending, false},
		{domain.StatusCompleted, domain.StatusConfirmed, false},
		{domain.StatusCompleted, domain.StatusCancelled, true},
		{domain.StatusCompleted, domain.StatusCompleted, true},
		{domain.StatusCancelled, domain.StatusPending, false},
		{domain.StatusCancelled, domain.StatusConfirmed, false},
		{domain.StatusCancelled, domain.StatusCompleted, false},
		{domain.StatusCancelled, domain.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"_to_"+string(tt.next), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.current, tt.next))
		})
	}
}
