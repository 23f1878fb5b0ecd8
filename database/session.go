package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"conference-webapp/errors"
	"conference-webapp/model"
)

func (store *MongoStore) GetSessions(confId string) ([]model.Session, error) {
	objId, err := primitive.ObjectIDFromHex(confId)
	if err != nil {
		return nil, errors.ErrNotFound
	}

	sessions := []model.Session{}
	cur, err := store.Sessions.Find(ctx, bson.D{{Key: "conference_id", Value: objId}})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading sessions from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var sess model.Session
		if err := cur.Decode(&sess); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading sessions from database: %v", err)
		}
		sessions = append(sessions, sess)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading sessions from database: %v", err)
	}

	return sessions, nil
}

func (store *MongoStore) GetSession(confId, id string) (model.Session, error) {
	confObjId, err := primitive.ObjectIDFromHex(confId)
	if err != nil {
		return model.Session{}, errors.ErrNotFound
	}
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Session{}, errors.ErrNotFound
	}

	var sess model.Session
	err = store.Sessions.FindOne(ctx, bson.D{
		{Key: "_id", Value: objId},
		{Key: "conference_id", Value: confObjId},
	}).Decode(&sess)
	if err == mongo.ErrNoDocuments {
		return model.Session{}, errors.ErrNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("server side problem occured while reading session info from database: %v", err)
	}

	return sess, nil
}

func (store *MongoStore) InsertSession(sess model.Session) error {
	_, err := store.Sessions.InsertOne(ctx, sess)
	if err != nil {
		return fmt.Errorf("cannot write session to database: %v", err)
	}
	return nil
}

func (store *MongoStore) UpdateSession(sess model.Session) error {
	res, err := store.Sessions.ReplaceOne(ctx, bson.D{{Key: "_id", Value: sess.Id}}, sess)
	if err != nil {
		return fmt.Errorf("cannot update session in database: %v", err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (store *MongoStore) DeleteSession(id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrNotFound
	}

	res, err := store.Sessions.DeleteOne(ctx, bson.D{{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("cannot delete session from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}
