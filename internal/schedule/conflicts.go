package schedule

import (
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// FindConflicts ищет активные записи, пересекающиеся с кандидатом
//
// Занятое окно записи - [start, start + duration + buffer): буфер
// резервирует уборку и подготовку после услуги. Пересечение проверяется
// как честное наложение интервалов со строгими неравенствами, поэтому
// запись, заканчивающаяся (с буфером) ровно к началу кандидата, не
// конфликтует. Длительность существующей записи учитывается полностью -
// длинная запись, начавшаяся раньше, но еще идущая в момент старта
// кандидата, будет найдена
func FindConflicts(
	date string,
	startTime types.TimeString,
	durationMinutes int,
	cal *Calendar,
	existing []*domain.Appointment,
	excludeID int64,
) ConflictResult {
	candStart, err := startTime.Minutes()
	if err != nil {
		// Некорректное время отсекается валидацией выше по стеку
		return ConflictResult{HasConflict: false, Conflicts: []*domain.Appointment{}}
	}
	candEnd := candStart + durationMinutes + cal.BufferMinutes

	conflicts := make([]*domain.Appointment, 0)

	for _, appt := range existing {
		if !appt.IsActive() || appt.DateString() != date {
			continue
		}
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		apptEnd := apptStart + appt.DurationMinutes + cal.BufferMinutes

		if apptStart < candEnd && apptEnd > candStart {
			conflicts = append(conflicts, appt)
		}
	}

	return ConflictResult{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}
