package users

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("CreateUser assigns the inserted id", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "Ayesha Khan", Email: "ayesha@example.com", CreatedAt: time.Now()}
		id, err := repo.CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), id)
	})

	mt.Run("CreateUser surfaces duplicate emails", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.CreateUser(context.Background(), &models.User{Email: "ayesha@example.com"})
		assert.Error(t, err)
		assert.True(t, exceptions.IsConflictError(err))
	})

	mt.Run("FindByEmail decodes the document", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Ayesha Khan"},
			{Key: "email", Value: "ayesha@example.com"},
			{Key: "phone", Value: "+923001234567"},
		}))

		user, err := repo.FindByEmail(context.Background(), "ayesha@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "+923001234567", user.Phone)
	})

	mt.Run("FindByID returns nil when nothing matches", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		user, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	mt.Run("FindByID rejects malformed ids", func(mt *mtest.T) {
		repo := &UserMongoRepository{Collection: mt.Coll}

		_, err := repo.FindByID(context.Background(), "user-1")
		assert.Error(t, err)
	})
}
