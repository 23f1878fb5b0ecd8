package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type CommitteeRole string

const (
	CommitteeChair   CommitteeRole = "chair"
	CommitteeCoChair CommitteeRole = "co-chair"
	CommitteeMember  CommitteeRole = "member"
)

type OrganizingCommittee struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Role         CommitteeRole      `json:"committee_role" bson:"committee_role" validate:"required,oneof=chair co-chair member"`
	DateJoined   string             `json:"date_joined" bson:"date_joined" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt    string             `json:"created_at" bson:"created_at"`
	UpdatedAt    string             `json:"updated_at" bson:"updated_at"`
	UserLogin    string             `json:"user" bson:"user" validate:"required"`
	ConferenceId primitive.ObjectID `json:"conference_id" bson:"conference_id"`
}

func (member OrganizingCommittee) Validate() error {
	return validateFields(member)
}
