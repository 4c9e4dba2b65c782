package database

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"flight-booking-system/model"
)

func TestStaticUsers(t *testing.T) {
	users := NewStaticUsers(model.UserData{Login: "admin", HashedPassword: "hash", Role: model.RoleAdmin})

	user, err := users.GetUserData(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	_, err = users.GetUserData(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestMongoUsers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "booking-service.users", mtest.FirstBatch, bson.D{
			{Key: "login", Value: "agent"},
			{Key: "password_hash", Value: "hash"},
			{Key: "role", Value: model.RoleAgent},
		}))

		user, err := NewMongoUsers(mt.Coll).GetUserData(context.Background(), "agent")
		require.NoError(mt, err)
		assert.Equal(mt, "agent", user.Login)
		assert.Equal(mt, "hash", user.HashedPassword)
		assert.False(mt, user.IsAdmin())
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "booking-service.users", mtest.FirstBatch))

		_, err := NewMongoUsers(mt.Coll).GetUserData(context.Background(), "ghost")
		assert.True(mt, errors.Is(err, ErrUserNotFound))
	})
}
