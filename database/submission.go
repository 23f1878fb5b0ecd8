package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"conference-webapp/errors"
	"conference-webapp/model"
)

// GetAllSubmissions is the committee-side view across every owner, used by
// the review actions.
func (store *MongoStore) GetAllSubmissions() ([]model.Submission, error) {
	return store.findSubmissions(bson.D{})
}

// GetSubmissionsForOwner lists the submissions belonging to one user, most
// recently submitted first. Every author-facing read goes through this
// owner filter.
func (store *MongoStore) GetSubmissionsForOwner(owner string) ([]model.Submission, error) {
	return store.findSubmissions(bson.D{{Key: "owner", Value: owner}})
}

func (store *MongoStore) findSubmissions(filter bson.D) ([]model.Submission, error) {
	submissions := []model.Submission{}

	opts := options.Find().SetSort(bson.D{{Key: "submission_date", Value: -1}})
	cur, err := store.Submissions.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading submissions from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var sub model.Submission
		if err := cur.Decode(&sub); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading submissions from database: %v", err)
		}
		submissions = append(submissions, sub)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading submissions from database: %v", err)
	}

	return submissions, nil
}

func (store *MongoStore) GetSubmission(id string) (model.Submission, error) {
	var sub model.Submission
	err := store.Submissions.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return model.Submission{}, errors.ErrNotFound
	}
	if err != nil {
		return model.Submission{}, fmt.Errorf("server side problem occured while reading submission info from database: %v", err)
	}
	return sub, nil
}

// submissionIdRetries bounds the regenerate-and-retry loop on identifier
// collision. The identifier doubles as the Mongo _id, so a collision shows
// up as a duplicate key error on insert.
const submissionIdRetries = 5

func (store *MongoStore) InsertSubmission(sub model.Submission) (model.Submission, error) {
	for attempt := 0; attempt < submissionIdRetries; attempt++ {
		if sub.Id == "" {
			sub.Id = model.NewSubmissionId()
		}
		_, err := store.Submissions.InsertOne(ctx, sub)
		if err == nil {
			return sub, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return model.Submission{}, fmt.Errorf("cannot write submission to database: %v", err)
		}
		sub.Id = ""
	}
	return model.Submission{}, fmt.Errorf("cannot allocate a unique submission identifier after %v attempts", submissionIdRetries)
}

func (store *MongoStore) UpdateSubmission(sub model.Submission) error {
	res, err := store.Submissions.ReplaceOne(ctx, bson.D{{Key: "_id", Value: sub.Id}}, sub)
	if err != nil {
		return fmt.Errorf("cannot update submission in database: %v", err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}

// CountSubmissionsOnDay counts a user's submissions dated on one calendar
// day, optionally excluding the record being updated. The count runs right
// before the insert with no surrounding transaction, so the daily quota is
// best-effort under concurrent submissions.
func (store *MongoStore) CountSubmissionsOnDay(owner, day, excludeId string) (int64, error) {
	filter := bson.D{
		{Key: "owner", Value: owner},
		{Key: "submission_date", Value: day},
	}
	if excludeId != "" {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeId}}})
	}

	count, err := store.Submissions.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("server side problem occured while counting submissions: %v", err)
	}
	return count, nil
}
