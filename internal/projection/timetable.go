package projection

import (
	"fmt"
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
)

// HoursPerDay is the number of timetable slots.
const HoursPerDay = 24

// HourSlot is one row of the daily timetable.
type HourSlot struct {
	Hour          int         `json:"hour"`
	Label         string      `json:"label"` // "09:00"
	IsCurrentHour bool        `json:"is_current_hour"`
	Todos         []todo.Todo `json:"todos"`
}

// OnDate reports whether t belongs on date's timetable. Unscheduled todos
// belong on every day.
func OnDate(t todo.Todo, date time.Time) bool {
	return !t.Scheduled() || t.ScheduledDate == FormatDate(Day(date))
}

// Occupies reports whether t fills hour h: its scheduled time falls in that
// hour, or h lies inclusively between the hours of its start and end.
func Occupies(t todo.Todo, h int) bool {
	if hour, ok := ParseHour(t.ScheduledTime); ok && hour == h {
		return true
	}
	if !t.HasRange() {
		return false
	}
	start, okStart := ParseHour(t.StartTime)
	end, okEnd := ParseHour(t.EndTime)
	return okStart && okEnd && start <= h && h <= end
}

// Timetable lays todos out over the 24 hours of selected. Todos with neither
// a scheduled time nor a range occupy no slot. now marks the current hour
// when selected is today.
func Timetable(todos []todo.Todo, selected, now time.Time) []HourSlot {
	sameDay := Day(selected).Equal(Day(now))

	slots := make([]HourSlot, HoursPerDay)
	for h := range slots {
		slots[h] = HourSlot{
			Hour:          h,
			Label:         fmt.Sprintf("%02d:00", h),
			IsCurrentHour: sameDay && now.Hour() == h,
			Todos:         []todo.Todo{},
		}
	}

	for _, t := range todos {
		if !OnDate(t, selected) {
			continue
		}
		for h := range slots {
			if Occupies(t, h) {
				slots[h].Todos = append(slots[h].Todos, t)
			}
		}
	}
	return slots
}
