package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/errors"
	"conference-webapp/model"
)

func (store *MongoStore) GetCommitteeMembers(confId string) ([]model.OrganizingCommittee, error) {
	objId, err := primitive.ObjectIDFromHex(confId)
	if err != nil {
		return nil, errors.ErrNotFound
	}

	members := []model.OrganizingCommittee{}
	cur, err := store.Committee.Find(ctx, bson.D{{Key: "conference_id", Value: objId}})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading committee members from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var member model.OrganizingCommittee
		if err := cur.Decode(&member); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading committee members from database: %v", err)
		}
		members = append(members, member)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading committee members from database: %v", err)
	}

	return members, nil
}

func (store *MongoStore) InsertCommitteeMember(member model.OrganizingCommittee) error {
	_, err := store.Committee.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("cannot write committee member to database: %v", err)
	}
	return nil
}

func (store *MongoStore) DeleteCommitteeMember(id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrNotFound
	}

	res, err := store.Committee.DeleteOne(ctx, bson.D{{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("cannot delete committee member from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}
