package database

import (
	"carepulse-service/internal/app/config"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func testStore() config.Store {
	return config.Store{
		DatabaseID:              "carepulse",
		DoctorCollectionID:      "doctors",
		AppointmentCollectionID: "appointments",
		PatientCollectionID:     "patients",
		UserCollectionID:        "users",
	}
}

func TestIndexPlan(t *testing.T) {
	plan := IndexPlan(testStore())

	require.Len(t, plan, 4)
	assert.Equal(t, "doctors", plan[0].Collection)
	assert.Equal(t, "appointments", plan[1].Collection)
	assert.Len(t, plan[1].Models, 3)
	assert.True(t, *plan[2].Models[0].Options.Unique)
	assert.True(t, *plan[3].Models[0].Options.Unique)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates every planned index", func(mt *mtest.T) {
		plan := IndexPlan(testStore())[2:]
		for range plan {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		created, err := EnsureIndexes(context.Background(), mt.DB, plan)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"email_1"}, created["users"])
		assert.Equal(mt, []string{"userId_1"}, created["patients"])
	})

	mt.Run("stops at first failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
			Name:    "IndexOptionsConflict",
		}))

		_, err := EnsureIndexes(context.Background(), mt.DB, IndexPlan(testStore())[2:])
		assert.Error(mt, err)
	})
}
