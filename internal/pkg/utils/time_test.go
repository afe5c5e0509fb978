package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	t.Run("Zoneless value keeps wall clock", func(t *testing.T) {
		schedule, err := ParseSchedule("2024-06-01T14:30:00")
		require.NoError(t, err)
		assert.Equal(t, "14:30", FormatTimeSlot(schedule))
	})

	t.Run("Zero padded slot", func(t *testing.T) {
		schedule, err := ParseSchedule("2024-06-01 09:05")
		require.NoError(t, err)
		assert.Equal(t, "09:05", FormatTimeSlot(schedule))
	})

	t.Run("Offset value keeps instant", func(t *testing.T) {
		schedule, err := ParseSchedule("2024-06-01T14:30:00+05:00")
		require.NoError(t, err)
		assert.True(t, schedule.Equal(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)))
	})

	t.Run("Date only", func(t *testing.T) {
		schedule, err := ParseSchedule("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, 2024, schedule.Year())
		assert.Equal(t, "00:00", FormatTimeSlot(schedule))
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := ParseSchedule("tomorrow afternoon")
		assert.Error(t, err)
	})

	t.Run("Rejects empty", func(t *testing.T) {
		_, err := ParseSchedule("   ")
		assert.Error(t, err)
	})
}

func TestFormatScheduleDisplay(t *testing.T) {
	schedule, err := ParseSchedule("2024-06-01T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "Jun 1, 2024, 2:30 PM", FormatScheduleDisplay(schedule))
}
