package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// UserData is an account allowed into the dashboard.
type UserData struct {
	Id             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"-" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
}

func (u UserData) IsAdmin() bool {
	return u.Role == RoleAdmin
}
