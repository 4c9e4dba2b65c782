package database

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flight-booking-system/model"
)

const USERS_COLLECTION string = "users"

var ErrUserNotFound = errors.New("user not found")

// UserStore looks up dashboard accounts by login.
type UserStore interface {
	GetUserData(ctx context.Context, login string) (model.UserData, error)
}

// StaticUsers serves accounts fixed at startup.
type StaticUsers struct {
	users map[string]model.UserData
}

func NewStaticUsers(users ...model.UserData) *StaticUsers {
	s := &StaticUsers{users: map[string]model.UserData{}}
	for _, u := range users {
		s.users[u.Login] = u
	}
	return s
}

func (s *StaticUsers) GetUserData(_ context.Context, login string) (model.UserData, error) {
	user, ok := s.users[login]
	if !ok {
		return model.UserData{}, ErrUserNotFound
	}
	return user, nil
}

// MongoUsers reads accounts from a MongoDB collection.
type MongoUsers struct {
	collection *mongo.Collection
}

func NewMongoUsers(collection *mongo.Collection) *MongoUsers {
	return &MongoUsers{collection: collection}
}

func DBInit(ctx context.Context, connString, database, collectionName string) (*mongo.Collection, error) {
	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(database).Collection(collectionName), nil
}

func (m *MongoUsers) GetUserData(ctx context.Context, login string) (model.UserData, error) {
	var user model.UserData
	err := m.collection.FindOne(ctx, bson.D{primitive.E{Key: "login", Value: login}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.UserData{}, ErrUserNotFound
	}
	if err != nil {
		return model.UserData{}, errors.Wrap(err, "server side problem occured while reading user data from database")
	}
	return user, nil
}
