package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeModel_SetCreatedAtUpdatedAt(t *testing.T) {
	appointment := &Appointment{}
	appointment.SetCreatedAtUpdatedAt()

	assert.False(t, appointment.CreatedAt.IsZero())
	assert.Equal(t, appointment.CreatedAt, appointment.UpdatedAt)
}
