package categoryservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sulaski/blogden/internal/common"
)

func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{m: newCategoryModel(db)}
}

// ListCategories returns all categories owned by the given user.
func (s *CategoryService) ListCategories(ctx context.Context, userID primitive.ObjectID) ([]Category, error) {
	return s.m.getByUser(ctx, userID)
}

// CreateCategory stores a new category owned by the given user.
func (s *CategoryService) CreateCategory(ctx context.Context, title string, userID primitive.ObjectID) (*Category, error) {
	v := common.NewValidator()
	validateTitle(v, title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	now := time.Now().UTC()
	category := &Category{
		Title:     title,
		User:      userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.m.insert(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory resolves a category by identifier alone.
func (s *CategoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*Category, error) {
	return s.m.findOne(ctx, bson.M{"_id": id})
}

// GetCategoryForUser resolves a category scoped to its owning user. A category
// that exists under a different owner is reported as not found.
func (s *CategoryService) GetCategoryForUser(ctx context.Context, id, userID primitive.ObjectID) (*Category, error) {
	return s.m.findOne(ctx, bson.M{"_id": id, "user": userID})
}

// UpdateCategory replaces the title of a category and returns the updated
// document.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, title string) (*Category, error) {
	v := common.NewValidator()
	validateTitle(v, title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateTitle(ctx, id, title, time.Now().UTC())
}

// DeleteCategory removes a category after verifying it belongs to the given
// user. The ownership check and the delete are two separate storage
// operations, not an atomic pair.
func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID primitive.ObjectID) error {
	if _, err := s.GetCategoryForUser(ctx, id, userID); err != nil {
		return err
	}

	return s.m.deleteByID(ctx, id)
}
