package schedule

import (
	"fmt"

	"github.com/techydad05/nail-artist-website/pkg/types"
)

// GenerateSlots генерирует упорядоченный список времен начала слотов на дату
// Слоты идут от открытия с шагом SlotDurationMinutes строго до закрытия:
// слот, начинающийся ровно в момент закрытия, не включается. Проверяется
// только время начала - помещается ли полная услуга до закрытия, здесь
// намеренно не учитывается
func GenerateSlots(date string, cal *Calendar) []types.TimeString {
	open, close := cal.HoursFor(date)

	openMinutes, err := open.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	closeMinutes, err := close.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	for m := openMinutes; m < closeMinutes; m += cal.SlotDurationMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}

	return slots
}
