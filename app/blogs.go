package main

import (
	"errors"
	"net/http"

	"github.com/sulaski/blogden/internal/blogservice"
	"github.com/sulaski/blogden/internal/categoryservice"
	"github.com/sulaski/blogden/internal/common"
	"github.com/sulaski/blogden/internal/userservice"
)

const blogCreatedStatus = http.StatusCreated

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	categoryID, err := app.readIDQuery(r, "categoryId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	startDate, err := app.readDateQuery(r, "startDate")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	endDate, err := app.readDateQuery(r, "endDate")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	page, limit := app.readPageLimit(r)

	_, err = app.userService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no user exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	_, err = app.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no category exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	filter := blogservice.Filter{
		UserID:     userID,
		CategoryID: categoryID,
		Keywords:   r.URL.Query().Get("keywords"),
		StartDate:  startDate,
		EndDate:    endDate,
		Page:       page,
		Limit:      limit,
	}

	blogs, total, err := app.blogService.ListBlogs(r.Context(), filter)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs, "totalBlogs": total, "page": page, "limit": limit}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	categoryID, err := app.readIDQuery(r, "categoryId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input createBlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	_, err = app.userService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no user exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	_, err = app.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no category exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	blog, err := app.blogService.CreateBlog(r.Context(), &blogservice.CreateBlogRequest{
		Title:       input.Title,
		Description: input.Description,
		UserID:      userID,
		CategoryID:  categoryID,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r, err.(common.ValidationError))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, blogCreatedStatus, envelope{"message": "blog created", "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	categoryID, err := app.readIDQuery(r, "categoryId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	_, err = app.userService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no user exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	_, err = app.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no category exists with this id")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	blog, err := app.blogService.GetBlog(r.Context(), blogID, userID, &categoryID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no blog found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updateBlogRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input updateBlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), blogID, userID, input.Title, input.Description)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no blog found")
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r, err.(common.ValidationError))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "blog updated", "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), blogID, userID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no blog found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "blog deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
