package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"conference-webapp/errors"
	"conference-webapp/model"
)

func (store *MongoStore) GetConferences() ([]model.Conference, error) {
	return store.findConferences(bson.D{})
}

// GetOpenConferences lists conferences still accepting submissions, i.e.
// whose end date has not passed. Dates are stored as 2006-01-02 strings, so
// lexicographic comparison matches chronological order.
func (store *MongoStore) GetOpenConferences(today string) ([]model.Conference, error) {
	return store.findConferences(bson.D{
		{Key: "end_date", Value: bson.D{{Key: "$gte", Value: today}}},
	})
}

func (store *MongoStore) findConferences(filter bson.D) ([]model.Conference, error) {
	conferences := []model.Conference{}

	cur, err := store.Conferences.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading conferences from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var conf model.Conference
		if err := cur.Decode(&conf); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading conferences from database: %v", err)
		}
		conferences = append(conferences, conf)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading conferences from database: %v", err)
	}

	return conferences, nil
}

func (store *MongoStore) GetConference(id string) (model.Conference, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Conference{}, errors.ErrNotFound
	}

	var conf model.Conference
	err = store.Conferences.FindOne(ctx, bson.D{{Key: "_id", Value: objId}}).Decode(&conf)
	if err == mongo.ErrNoDocuments {
		return model.Conference{}, errors.ErrNotFound
	}
	if err != nil {
		return model.Conference{}, fmt.Errorf("server side problem occured while reading conference info from database: %v", err)
	}

	return conf, nil
}

func (store *MongoStore) InsertConference(conf model.Conference) error {
	_, err := store.Conferences.InsertOne(ctx, conf)
	if err != nil {
		return fmt.Errorf("cannot write conference to database: %v", err)
	}
	return nil
}

func (store *MongoStore) UpdateConference(conf model.Conference) error {
	_, err := store.Conferences.ReplaceOne(ctx, bson.D{{Key: "_id", Value: conf.Id}}, conf)
	if err != nil {
		return fmt.Errorf("cannot update conference in database: %v", err)
	}
	return nil
}

// DeleteConference removes the conference together with its submissions and
// sessions, mirroring the cascade the data model requires.
func (store *MongoStore) DeleteConference(id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrNotFound
	}

	res, err := store.Conferences.DeleteOne(ctx, bson.D{{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("cannot delete conference from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return errors.ErrNotFound
	}

	childFilter := bson.D{{Key: "conference_id", Value: objId}}
	if _, err := store.Submissions.DeleteMany(ctx, childFilter); err != nil {
		return fmt.Errorf("cannot cascade delete submissions: %v", err)
	}
	if _, err := store.Sessions.DeleteMany(ctx, childFilter); err != nil {
		return fmt.Errorf("cannot cascade delete sessions: %v", err)
	}
	if _, err := store.Committee.DeleteMany(ctx, childFilter); err != nil {
		return fmt.Errorf("cannot cascade delete committee memberships: %v", err)
	}

	return nil
}
