package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

var zonelessScheduleLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseSchedule reads an appointment date-time. Values without an offset are
// interpreted in time.Local, which cmd/http sets from APP_TIMEZONE.
func ParseSchedule(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("schedule is empty")
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}
	for _, layout := range zonelessScheduleLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date-time", value)
}

// FormatTimeSlot renders the zero padded HH:MM label of a schedule.
func FormatTimeSlot(schedule time.Time) string {
	return schedule.In(time.Local).Format(constvars.TimeSlotLayout)
}

func FormatScheduleDisplay(schedule time.Time) string {
	return schedule.In(time.Local).Format(constvars.ScheduleDisplayLayout)
}
