package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestBlog(t *testing.T, ts *testServer, userID, categoryID, title, description string) string {
	t.Helper()

	path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s", userID, categoryID)
	status, body := ts.do(t, http.MethodPost, path, map[string]any{"title": title, "description": description})
	assert.Equal(t, http.StatusCreated, status)

	var res struct {
		Blog struct {
			ID string `json:"id"`
		} `json:"blog"`
	}
	unmarshalBody(t, body, &res)

	return res.Blog.ID
}

func TestBlogListing(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	user := createTestUser(t, ts, "gopher")
	category := createTestCategory(t, ts, user, "Tech")

	for i := 0; i < 12; i++ {
		createTestBlog(t, ts, user, category, fmt.Sprintf("Post %d", i), "ordinary words")
	}
	createTestBlog(t, ts, user, category, "Go Generics", "all about FOO here")

	t.Run("keyword filter matches title or description case-insensitively", func(t *testing.T) {
		path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s&keywords=foo", user, category)
		status, body := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status)

		var res struct {
			Blogs []struct {
				Title string `json:"title"`
			} `json:"blogs"`
			TotalBlogs int `json:"totalBlogs"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, 1, res.TotalBlogs)
		assert.Len(t, res.Blogs, 1)
		assert.Equal(t, "Go Generics", res.Blogs[0].Title)
	})

	t.Run("pagination returns the requested page and the full count", func(t *testing.T) {
		path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s&page=2&limit=5", user, category)
		status, body := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status)

		var res struct {
			Blogs      []map[string]any `json:"blogs"`
			TotalBlogs int              `json:"totalBlogs"`
			Page       int              `json:"page"`
			Limit      int              `json:"limit"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, 13, res.TotalBlogs)
		assert.Len(t, res.Blogs, 5)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 5, res.Limit)
	})

	t.Run("non-numeric pagination silently falls back to the defaults", func(t *testing.T) {
		path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s&page=abc&limit=xyz", user, category)
		status, body := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status)

		var res struct {
			Blogs      []map[string]any `json:"blogs"`
			TotalBlogs int              `json:"totalBlogs"`
			Page       int              `json:"page"`
			Limit      int              `json:"limit"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, 13, res.TotalBlogs)
		assert.Len(t, res.Blogs, 10)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 10, res.Limit)
	})

	t.Run("identifiers are validated in declaration order", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/blogs?userId=bad&categoryId=alsobad", nil)
		assert.Equal(t, http.StatusBadRequest, status)

		var res struct {
			Message string `json:"message"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, "invalid or missing userId", res.Message)
	})

	t.Run("unparseable date is a 400 naming the field", func(t *testing.T) {
		path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s&startDate=not-a-date", user, category)
		status, body := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, status)

		var res struct {
			Message string `json:"message"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, "invalid startDate", res.Message)
	})

	t.Run("listing under an unknown category is a 404", func(t *testing.T) {
		path := fmt.Sprintf("/blogs?userId=%s&categoryId=507f1f77bcf86cd799439011", user)
		status, body := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status)

		var res struct {
			Message string `json:"message"`
		}
		unmarshalBody(t, body, &res)
		assert.Equal(t, "no category exists with this id", res.Message)
	})
}

func TestBlogLifecycle(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	u1 := createTestUser(t, ts, "u1")
	u2 := createTestUser(t, ts, "u2")
	c1 := createTestCategory(t, ts, u1, "Tech")

	// create
	path := fmt.Sprintf("/blogs?userId=%s&categoryId=%s", u1, c1)
	status, body := ts.do(t, http.MethodPost, path, map[string]any{"title": "A", "description": "B"})
	assert.Equal(t, http.StatusCreated, status)

	var created struct {
		Message string `json:"message"`
		Blog    struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			User        string `json:"user"`
			Category    string `json:"category"`
		} `json:"blog"`
	}
	unmarshalBody(t, body, &created)
	assert.Equal(t, "blog created", created.Message)
	assert.Equal(t, "A", created.Blog.Title)
	assert.Equal(t, u1, created.Blog.User)
	assert.Equal(t, c1, created.Blog.Category)

	blogID := created.Blog.ID

	// fetch under the owning user and category
	path = fmt.Sprintf("/blogs/%s?userId=%s&categoryId=%s", blogID, u1, c1)
	status, body = ts.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, status)

	var fetched struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	unmarshalBody(t, body, &fetched)
	assert.Equal(t, blogID, fetched.ID)
	assert.Equal(t, "A", fetched.Title)
	assert.Equal(t, "B", fetched.Description)

	// fetch under a different user is a 404
	path = fmt.Sprintf("/blogs/%s?userId=%s&categoryId=%s", blogID, u2, c1)
	status, body = ts.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var res struct {
		Message string `json:"message"`
	}
	unmarshalBody(t, body, &res)
	assert.Equal(t, "no blog found", res.Message)

	// partial update keeps the unspecified field
	path = fmt.Sprintf("/blogs/%s?userId=%s", blogID, u1)
	status, body = ts.do(t, http.MethodPatch, path, map[string]any{"title": "A2"})
	assert.Equal(t, http.StatusOK, status)

	var updated struct {
		Message string `json:"message"`
		Blog    struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"blog"`
	}
	unmarshalBody(t, body, &updated)
	assert.Equal(t, "blog updated", updated.Message)
	assert.Equal(t, "A2", updated.Blog.Title)
	assert.Equal(t, "B", updated.Blog.Description)

	// update under the wrong user is a 404
	path = fmt.Sprintf("/blogs/%s?userId=%s", blogID, u2)
	status, _ = ts.do(t, http.MethodPatch, path, map[string]any{"title": "hijack"})
	assert.Equal(t, http.StatusNotFound, status)

	// delete under the owning user
	path = fmt.Sprintf("/blogs/%s?userId=%s", blogID, u1)
	status, body = ts.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, status)

	unmarshalBody(t, body, &res)
	assert.Equal(t, "blog deleted", res.Message)

	// a subsequent fetch is a 404
	path = fmt.Sprintf("/blogs/%s?userId=%s&categoryId=%s", blogID, u1, c1)
	status, _ = ts.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
