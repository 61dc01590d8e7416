package blogservice

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sulaski/blogden/internal/common"
)

// NewBlogService wires the blog model against the given database. The message
// producer may be nil, in which case lifecycle events are not published.
func NewBlogService(db *mongo.Database, mb common.MessageProducer) *BlogService {
	return &BlogService{m: newBlogModel(db), mb: mb}
}

type CreateBlogRequest struct {
	Title       string
	Description string
	UserID      primitive.ObjectID
	CategoryID  primitive.ObjectID
}

// CreateBlog stores a new blog owned by the request's user and category and
// publishes a blog.created event.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	now := time.Now().UTC()
	blog := &Blog{
		Title:       req.Title,
		Description: sanitizeDescription(req.Description),
		User:        req.UserID,
		Category:    req.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.m.insert(ctx, blog); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, blog)

	return blog, nil
}

// GetBlog resolves a blog scoped to its owning user and, when categoryID is
// non-nil, its owning category. An ownership mismatch is reported as not
// found.
func (s *BlogService) GetBlog(ctx context.Context, id, userID primitive.ObjectID, categoryID *primitive.ObjectID) (*Blog, error) {
	filter := bson.M{"_id": id, "user": userID}
	if categoryID != nil {
		filter["category"] = *categoryID
	}

	return s.m.findOne(ctx, filter)
}

// ListBlogs returns one page of blogs matching the filter plus the total
// matching count.
func (s *BlogService) ListBlogs(ctx context.Context, f Filter) ([]Blog, int64, error) {
	f.normalize()
	return s.m.list(ctx, f)
}

// UpdateBlog applies a partial update to a blog owned by the given user.
// Nil fields are preserved. The ownership check and the update are two
// separate storage operations, not an atomic pair.
func (s *BlogService) UpdateBlog(ctx context.Context, id, userID primitive.ObjectID, title, description *string) (*Blog, error) {
	v := common.NewValidator()
	if title != nil {
		validateTitle(v, *title)
	}
	if description != nil {
		validateDescription(v, *description)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if _, err := s.GetBlog(ctx, id, userID, nil); err != nil {
		return nil, err
	}

	if description != nil {
		clean := sanitizeDescription(*description)
		description = &clean
	}

	return s.m.update(ctx, id, title, description, time.Now().UTC())
}

// DeleteBlog removes a blog after verifying it belongs to the given user.
func (s *BlogService) DeleteBlog(ctx context.Context, id, userID primitive.ObjectID) error {
	if _, err := s.GetBlog(ctx, id, userID, nil); err != nil {
		return err
	}

	return s.m.deleteByID(ctx, id)
}

// publishCreated is best-effort: a lost event never fails the request.
func (s *BlogService) publishCreated(ctx context.Context, blog *Blog) {
	if s.mb == nil {
		return
	}

	msg, err := json.Marshal(blog)
	if err != nil {
		return
	}

	_ = s.mb.Publish(ctx, msg, common.BlogCreatedKey, common.EntityExchange)
}
