package blogservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sulaski/blogden/internal/common"
)

func setupTestService(t *testing.T) *BlogService {
	db := common.TestDB(t)
	return NewBlogService(db, nil)
}

func strptr(s string) *string {
	return &s
}

func TestCreateBlog(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	user := primitive.NewObjectID()
	category := primitive.NewObjectID()

	testCases := []struct {
		name    string
		req     *CreateBlogRequest
		wantErr bool
	}{
		{
			name: "valid blog",
			req: &CreateBlogRequest{
				Title:       "A",
				Description: "B",
				UserID:      user,
				CategoryID:  category,
			},
		},
		{
			name: "missing title",
			req: &CreateBlogRequest{
				Description: "B",
				UserID:      user,
				CategoryID:  category,
			},
			wantErr: true,
		},
		{
			name: "missing description",
			req: &CreateBlogRequest{
				Title:      "A",
				UserID:     user,
				CategoryID: category,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blog, err := s.CreateBlog(ctx, tc.req)
			if tc.wantErr {
				var verr common.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}

			assert.NoError(t, err)
			assert.False(t, blog.ID.IsZero())
			assert.Equal(t, tc.req.Title, blog.Title)
			assert.Equal(t, tc.req.Description, blog.Description)
			assert.Equal(t, user, blog.User)
			assert.Equal(t, category, blog.Category)
			assert.False(t, blog.CreatedAt.IsZero())
		})
	}
}

func TestGetBlogScoped(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	user := primitive.NewObjectID()
	category := primitive.NewObjectID()
	otherUser := primitive.NewObjectID()
	otherCategory := primitive.NewObjectID()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:       "A",
		Description: "B",
		UserID:      user,
		CategoryID:  category,
	})
	assert.NoError(t, err)

	got, err := s.GetBlog(ctx, created.ID, user, &category)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// ownership mismatches read as not found
	_, err = s.GetBlog(ctx, created.ID, otherUser, &category)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetBlog(ctx, created.ID, user, &otherCategory)
	assert.ErrorIs(t, err, ErrNotFound)

	// category scope may be omitted
	got, err = s.GetBlog(ctx, created.ID, user, nil)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestListBlogs(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	user := primitive.NewObjectID()
	category := primitive.NewObjectID()
	otherCategory := primitive.NewObjectID()

	for i := 0; i < 12; i++ {
		_, err := s.CreateBlog(ctx, &CreateBlogRequest{
			Title:       fmt.Sprintf("Post %d", i),
			Description: "ordinary words",
			UserID:      user,
			CategoryID:  category,
		})
		assert.NoError(t, err)
	}

	_, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:       "Go Generics",
		Description: "FOO in the description",
		UserID:      user,
		CategoryID:  category,
	})
	assert.NoError(t, err)

	_, err = s.CreateBlog(ctx, &CreateBlogRequest{
		Title:       "foo elsewhere",
		Description: "different category",
		UserID:      user,
		CategoryID:  otherCategory,
	})
	assert.NoError(t, err)

	t.Run("keyword search is case-insensitive and scoped", func(t *testing.T) {
		blogs, total, err := s.ListBlogs(ctx, Filter{
			UserID:     user,
			CategoryID: category,
			Keywords:   "foo",
		})
		assert.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, blogs, 1)
		assert.Equal(t, "Go Generics", blogs[0].Title)
	})

	t.Run("pagination returns a page and the full count", func(t *testing.T) {
		blogs, total, err := s.ListBlogs(ctx, Filter{
			UserID:     user,
			CategoryID: category,
			Page:       2,
			Limit:      5,
		})
		assert.NoError(t, err)
		assert.EqualValues(t, 13, total)
		assert.Len(t, blogs, 5)
	})

	t.Run("zero pagination values fall back to defaults", func(t *testing.T) {
		blogs, total, err := s.ListBlogs(ctx, Filter{
			UserID:     user,
			CategoryID: category,
		})
		assert.NoError(t, err)
		assert.EqualValues(t, 13, total)
		assert.Len(t, blogs, 10)
	})
}

func TestUpdateBlog(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	user := primitive.NewObjectID()
	category := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:       "A",
		Description: "B",
		UserID:      user,
		CategoryID:  category,
	})
	assert.NoError(t, err)

	// partial update keeps the unspecified field
	updated, err := s.UpdateBlog(ctx, created.ID, user, strptr("New Title"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "B", updated.Description)

	// wrong owner reads as not found
	_, err = s.UpdateBlog(ctx, created.ID, stranger, strptr("X"), nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// provided-but-empty fields are rejected
	_, err = s.UpdateBlog(ctx, created.ID, user, strptr(""), nil)
	var verr common.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteBlog(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	user := primitive.NewObjectID()
	category := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:       "A",
		Description: "B",
		UserID:      user,
		CategoryID:  category,
	})
	assert.NoError(t, err)

	err = s.DeleteBlog(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetBlog(ctx, created.ID, user, nil)
	assert.NoError(t, err)

	err = s.DeleteBlog(ctx, created.ID, user)
	assert.NoError(t, err)

	_, err = s.GetBlog(ctx, created.ID, user, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
