package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of actor roles. Committee members manage
// conferences, sessions and review decisions; authors only manage their
// own submissions.
type Role string

const (
	RoleCommittee Role = "committee"
	RoleAuthor    Role = "author"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCommittee:
		return RoleCommittee, nil
	case RoleAuthor, Role(""):
		return RoleAuthor, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

type UserData struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"password_hash" bson:"password_hash,omitempty"`
	Role           Role               `json:"role" bson:"role,omitempty"`
}
