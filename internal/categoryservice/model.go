package categoryservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("category not found")

func newCategoryModel(db *mongo.Database) *CategoryModel {
	return &CategoryModel{coll: db.Collection("categories")}
}

func (m *CategoryModel) insert(ctx context.Context, c *Category) error {
	res, err := m.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}

	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *CategoryModel) findOne(ctx context.Context, filter bson.M) (*Category, error) {
	var c Category
	err := m.coll.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CategoryModel) getByUser(ctx context.Context, userID primitive.ObjectID) ([]Category, error) {
	cursor, err := m.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (m *CategoryModel) updateTitle(ctx context.Context, id primitive.ObjectID, title string, now time.Time) (*Category, error) {
	update := bson.M{"$set": bson.M{"title": title, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c Category
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CategoryModel) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	err := m.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return ErrNotFound
		default:
			return err
		}
	}

	return nil
}
