package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"conference-webapp/config"
	"conference-webapp/model"
)

var ctx = context.TODO()

// Store is the persistence contract the handlers work against. The Mongo
// implementation is the production one; tests install the in-memory store.
type Store interface {
	GetUser(login string) (model.UserData, error)
	InsertUser(user model.UserData) error
	UpdateUser(user model.UserData) error

	GetConferences() ([]model.Conference, error)
	GetOpenConferences(today string) ([]model.Conference, error)
	GetConference(id string) (model.Conference, error)
	InsertConference(conf model.Conference) error
	UpdateConference(conf model.Conference) error
	DeleteConference(id string) error

	GetAllSubmissions() ([]model.Submission, error)
	GetSubmissionsForOwner(owner string) ([]model.Submission, error)
	GetSubmission(id string) (model.Submission, error)
	InsertSubmission(sub model.Submission) (model.Submission, error)
	UpdateSubmission(sub model.Submission) error
	CountSubmissionsOnDay(owner, day, excludeId string) (int64, error)

	GetCommitteeMembers(confId string) ([]model.OrganizingCommittee, error)
	InsertCommitteeMember(member model.OrganizingCommittee) error
	DeleteCommitteeMember(id string) error

	GetSessions(confId string) ([]model.Session, error)
	GetSession(confId, id string) (model.Session, error)
	InsertSession(sess model.Session) error
	UpdateSession(sess model.Session) error
	DeleteSession(id string) error
}

// Current is the store every handler goes through.
var Current Store

// Init connects to Mongo and installs it as the current store.
func Init(cfg config.Config) error {
	store, err := NewMongoStore(cfg.MongoConnString)
	if err != nil {
		return err
	}
	Current = store
	return nil
}

type MongoStore struct {
	Users       *mongo.Collection
	Conferences *mongo.Collection
	Submissions *mongo.Collection
	Committee   *mongo.Collection
	Sessions    *mongo.Collection
}

func NewMongoStore(connString string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	db := client.Database("conference-service")
	store := &MongoStore{
		Users:       db.Collection("users"),
		Conferences: db.Collection("conferences"),
		Submissions: db.Collection("submissions"),
		Committee:   db.Collection("committee"),
		Sessions:    db.Collection("sessions"),
	}

	if err := store.ensureIndexes(); err != nil {
		return nil, err
	}

	return store, nil
}

// ensureIndexes keeps logins unique and the owner/date quota count cheap.
// The submission identifier needs no extra index: it is the document _id,
// so a generator collision surfaces as a duplicate key error on insert.
func (store *MongoStore) ensureIndexes() error {
	_, err := store.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cannot create login index: %v", err)
	}

	_, err = store.Submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "submission_date", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("cannot create submission quota index: %v", err)
	}

	return nil
}
