// Package schedule реализует движок доступности и конфликтов записей:
// генерацию слотов по бизнес-календарю, проверку даты бронирования,
// поиск пересечений и правила смены статусов. Все функции чистые -
// работают над переданным снимком записей и не ходят в хранилище,
// поэтому безопасны для параллельных вызовов из handlers.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/techydad05/nail-artist-website/internal/config"
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

var (
	// ErrInvalidCalendar возвращается при нарушении инвариантов календаря
	// Это ошибка конфигурации, а не пользовательского ввода: main обязан
	// завершить запуск сервиса
	ErrInvalidCalendar = errors.New("schedule: invalid calendar configuration")
)

// HoursOverride переопределение часов работы на конкретную дату
type HoursOverride struct {
	Open  types.TimeString
	Close types.TimeString
}

// Calendar бизнес-календарь салона
// Конструируется один раз при старте и далее только читается;
// изменение календаря - это изменение конфига и редеплой
type Calendar struct {
	DailyOpen           types.TimeString
	DailyClose          types.TimeString
	SlotDurationMinutes int
	BufferMinutes       int
	ClosedWeekdays      []time.Weekday
	Holidays            map[string]struct{}
	SpecialHours        map[string]HoursOverride
	MinAdvanceHours     int
	MaxAdvanceDays      int
}

// FromConfig собирает календарь из TOML-конфигурации, подставляя
// дефолты для незаполненных значений, и валидирует инварианты
func FromConfig(cfg config.CalendarConfig) (*Calendar, error) {
	cal := &Calendar{
		DailyOpen:           types.TimeString(cfg.DailyOpen),
		DailyClose:          types.TimeString(cfg.DailyClose),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		BufferMinutes:       cfg.BufferMinutes,
		MinAdvanceHours:     cfg.MinAdvanceHours,
		MaxAdvanceDays:      cfg.MaxAdvanceDays,
		Holidays:            make(map[string]struct{}, len(cfg.Holidays)),
		SpecialHours:        make(map[string]HoursOverride, len(cfg.SpecialHours)),
	}

	if cal.SlotDurationMinutes == 0 {
		cal.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cal.BufferMinutes == 0 {
		cal.BufferMinutes = domain.DefaultBufferMinutes
	}
	if cal.MinAdvanceHours == 0 {
		cal.MinAdvanceHours = domain.DefaultMinAdvanceHours
	}
	if cal.MaxAdvanceDays == 0 {
		cal.MaxAdvanceDays = domain.DefaultMaxAdvanceDays
	}

	for _, wd := range cfg.ClosedWeekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("%w: closed weekday %d out of range 0-6", ErrInvalidCalendar, wd)
		}
		cal.ClosedWeekdays = append(cal.ClosedWeekdays, time.Weekday(wd))
	}

	for _, h := range cfg.Holidays {
		if _, err := ParseDate(h); err != nil {
			return nil, fmt.Errorf("%w: holiday %q is not a valid date", ErrInvalidCalendar, h)
		}
		cal.Holidays[h] = struct{}{}
	}

	for date, hours := range cfg.SpecialHours {
		if _, err := ParseDate(date); err != nil {
			return nil, fmt.Errorf("%w: special hours date %q is not a valid date", ErrInvalidCalendar, date)
		}
		cal.SpecialHours[date] = HoursOverride{
			Open:  types.TimeString(hours.Open),
			Close: types.TimeString(hours.Close),
		}
	}

	if err := cal.Validate(); err != nil {
		return nil, err
	}

	return cal, nil
}

// Validate проверяет инварианты календаря: open < close (включая
// переопределения), положительную длительность слота, неотрицательные
// буфер и границы окна бронирования
func (c *Calendar) Validate() error {
	if err := c.DailyOpen.Validate(); err != nil {
		return fmt.Errorf("%w: daily open: %v", ErrInvalidCalendar, err)
	}
	if err := c.DailyClose.Validate(); err != nil {
		return fmt.Errorf("%w: daily close: %v", ErrInvalidCalendar, err)
	}
	if !c.DailyOpen.IsBefore(c.DailyClose) {
		return fmt.Errorf("%w: daily open %s must be before close %s", ErrInvalidCalendar, c.DailyOpen, c.DailyClose)
	}

	if c.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive", ErrInvalidCalendar)
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer minutes must not be negative", ErrInvalidCalendar)
	}
	if c.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: min advance hours must not be negative", ErrInvalidCalendar)
	}
	if c.MaxAdvanceDays <= 0 {
		return fmt.Errorf("%w: max advance days must be positive", ErrInvalidCalendar)
	}

	for date, hours := range c.SpecialHours {
		if err := hours.Open.Validate(); err != nil {
			return fmt.Errorf("%w: special hours for %s: open: %v", ErrInvalidCalendar, date, err)
		}
		if err := hours.Close.Validate(); err != nil {
			return fmt.Errorf("%w: special hours for %s: close: %v", ErrInvalidCalendar, date, err)
		}
		if !hours.Open.IsBefore(hours.Close) {
			return fmt.Errorf("%w: special hours for %s: open %s must be before close %s",
				ErrInvalidCalendar, date, hours.Open, hours.Close)
		}
	}

	return nil
}

// HoursFor возвращает эффективные часы работы на дату:
// переопределение из SpecialHours, если есть, иначе дефолтные
func (c *Calendar) HoursFor(date string) (open, close types.TimeString) {
	if hours, ok := c.SpecialHours[date]; ok {
		return hours.Open, hours.Close
	}
	return c.DailyOpen, c.DailyClose
}

// IsClosedWeekday возвращает true, если день недели всегда выходной
func (c *Calendar) IsClosedWeekday(wd time.Weekday) bool {
	for _, closed := range c.ClosedWeekdays {
		if closed == wd {
			return true
		}
	}
	return false
}

// IsHoliday возвращает true, если дата объявлена праздничным днем
func (c *Calendar) IsHoliday(date string) bool {
	_, ok := c.Holidays[date]
	return ok
}

// ParseDate строго парсит дату YYYY-MM-DD
// Возвращенное время - полночь этой даты в локальной тайм-зоне, чтобы
// день недели и сравнения по календарным дням не дрейфовали через UTC
func ParseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}
