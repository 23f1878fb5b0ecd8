package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"conference-webapp/model"
)

func (store *MongoStore) GetUser(userLogin string) (model.UserData, error) {
	var user model.UserData
	cur, err := store.Users.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	for cur.Next(ctx) {
		err := cur.Decode(&user)
		if err != nil {
			return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	cur.Close(ctx)

	return user, nil
}

func (store *MongoStore) InsertUser(user model.UserData) error {
	_, err := store.Users.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("cannot write user to database: %v", err)
	}
	return nil
}

func (store *MongoStore) UpdateUser(user model.UserData) error {
	_, err := store.Users.ReplaceOne(ctx, bson.D{{Key: "login", Value: user.Login}}, user)
	if err != nil {
		return fmt.Errorf("cannot update user in database: %v", err)
	}
	return nil
}
