package blogservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("blog not found")

func newBlogModel(db *mongo.Database) *BlogModel {
	return &BlogModel{coll: db.Collection("blogs")}
}

func (m *BlogModel) insert(ctx context.Context, b *Blog) error {
	res, err := m.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}

	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *BlogModel) findOne(ctx context.Context, filter bson.M) (*Blog, error) {
	var b Blog
	err := m.coll.FindOne(ctx, filter).Decode(&b)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &b, nil
}

// list returns one page of matching blogs plus the total count over the same
// filter. The count is a second, sequential storage operation.
func (m *BlogModel) list(ctx context.Context, f Filter) ([]Blog, int64, error) {
	query := f.query()

	opts := options.Find().SetSkip(f.skip()).SetLimit(int64(f.Limit))
	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := m.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// update applies the provided fields and returns the document as it is after
// the update. Absent fields are preserved.
func (m *BlogModel) update(ctx context.Context, id primitive.ObjectID, title, description *string, now time.Time) (*Blog, error) {
	set := bson.M{"updatedAt": now}
	if title != nil {
		set["title"] = *title
	}
	if description != nil {
		set["description"] = *description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b Blog
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &b, nil
}

func (m *BlogModel) deleteByID(ctx context.Context, id primitive.ObjectID) error {
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
