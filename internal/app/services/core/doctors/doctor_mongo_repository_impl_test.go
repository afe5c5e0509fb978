package doctors

import (
	"carepulse-service/internal/app/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDoctorMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("CreateDoctor assigns the inserted id", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		doctor := &models.Doctor{Name: "Dr. A", Speciality: "Cardiology", CreatedAt: time.Now()}
		id, err := repo.CreateDoctor(context.Background(), doctor)
		require.NoError(t, err)
		assert.Equal(t, doctor.ID.Hex(), id)
		assert.False(t, doctor.ID.IsZero())
	})

	mt.Run("FindAll decodes every document", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Dr. B"},
			{Key: "speciality", Value: "Dermatology"},
			{Key: "imageId", Value: "b.png"},
		}
		second := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Dr. A"},
			{Key: "speciality", Value: "Cardiology"},
			{Key: "imageId", Value: "a.png"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, first, second))

		doctors, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, doctors, 2)
		assert.Equal(t, "Dr. B", doctors[0].Name)
		assert.Equal(t, "a.png", doctors[1].ImageID)
	})

	mt.Run("FindAll on an empty collection", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		doctors, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, doctors)
		assert.Empty(t, doctors)
	})

	mt.Run("FindAll surfaces command errors", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
			Name:    "Unauthorized",
		}))

		doctors, err := repo.FindAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, doctors)
	})

	mt.Run("DeleteByID reports removal", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		deleted, err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	mt.Run("DeleteByID on a missing document", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		deleted, err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	mt.Run("DeleteByID rejects malformed ids", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}

		_, err := repo.DeleteByID(context.Background(), "not-an-id")
		assert.Error(t, err)
	})
}
