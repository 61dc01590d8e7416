package userservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("user not found")

func newUserModel(db *mongo.Database) *UserModel {
	return &UserModel{coll: db.Collection("users")}
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	res, err := m.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *UserModel) getByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getAll(ctx context.Context) ([]User, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// an empty collection yields an empty array, not null
	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// updateUsername sets the new username and returns the document as it is
// after the update.
func (m *UserModel) updateUsername(ctx context.Context, id primitive.ObjectID, username string, now time.Time) (*User, error) {
	update := bson.M{"$set": bson.M{"username": username, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u User
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) deleteByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	err := m.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
