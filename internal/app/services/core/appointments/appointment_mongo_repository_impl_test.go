package appointments

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAppointmentMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("CreateAppointment assigns the inserted id", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		appointment := &models.Appointment{Status: constvars.AppointmentStatusPending, Version: 1}
		id, err := repo.CreateAppointment(context.Background(), appointment)
		require.NoError(t, err)
		assert.Equal(t, appointment.ID.Hex(), id)
	})

	mt.Run("FindByID decodes the document", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: objectID},
			{Key: "status", Value: constvars.AppointmentStatusScheduled},
			{Key: "timeSlot", Value: "14:30"},
			{Key: "version", Value: 3},
		}))

		appointment, err := repo.FindByID(context.Background(), objectID.Hex())
		require.NoError(t, err)
		require.NotNil(t, appointment)
		assert.Equal(t, objectID, appointment.ID)
		assert.Equal(t, "14:30", appointment.TimeSlot)
		assert.Equal(t, 3, appointment.Version)
	})

	mt.Run("FindByID returns nil when nothing matches", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		appointment, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, appointment)
	})

	mt.Run("FindByID rejects malformed ids", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}

		_, err := repo.FindByID(context.Background(), "42")
		assert.Error(t, err)
	})

	mt.Run("FindAll decodes every document", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: constvars.AppointmentStatusPending}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: constvars.AppointmentStatusCancelled}},
		))

		appointments, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointments[1].Status)
	})

	mt.Run("UpdateAppointment returns the updated document", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: objectID},
			{Key: "status", Value: constvars.AppointmentStatusScheduled},
			{Key: "version", Value: 2},
		}}))

		status := constvars.AppointmentStatusScheduled
		expectedVersion := 1
		appointment, err := repo.UpdateAppointment(context.Background(), objectID.Hex(), models.AppointmentUpdate{
			Status:    &status,
			UpdatedAt: time.Now(),
		}, &expectedVersion)
		require.NoError(t, err)
		require.NotNil(t, appointment)
		assert.Equal(t, 2, appointment.Version)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
	})

	mt.Run("UpdateAppointment returns nil when nothing matches", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		expectedVersion := 4
		appointment, err := repo.UpdateAppointment(context.Background(), primitive.NewObjectID().Hex(), models.AppointmentUpdate{
			UpdatedAt: time.Now(),
		}, &expectedVersion)
		require.NoError(t, err)
		assert.Nil(t, appointment)
	})
}

func TestAppointmentUpdate_ConvertToBsonM(t *testing.T) {
	status := constvars.AppointmentStatusCancelled
	reason := "Doctor unavailable"
	updatedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	set := models.AppointmentUpdate{
		Status:             &status,
		CancellationReason: &reason,
		UpdatedAt:          updatedAt,
	}.ConvertToBsonM()

	assert.Equal(t, bson.M{
		"status":             status,
		"cancellationReason": reason,
		"updatedAt":          updatedAt,
	}, set)
}
