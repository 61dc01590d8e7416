package main

import (
	"errors"
	"net/http"

	"github.com/sulaski/blogden/internal/categoryservice"
	"github.com/sulaski/blogden/internal/common"
	"github.com/sulaski/blogden/internal/userservice"
)

const categoryCreatedStatus = http.StatusOK

func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
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

	categories, err := app.categoryService.ListCategories(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, categories, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createCategoryRequest struct {
	Title string `json:"title"`
}

func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input createCategoryRequest
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

	category, err := app.categoryService.CreateCategory(r.Context(), input.Title, userID)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r, err.(common.ValidationError))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, categoryCreatedStatus, envelope{"message": "category created", "category": category}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updateCategoryRequest struct {
	Title string `json:"title"`
}

func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	// identifiers are validated in declaration order: user, then category
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	categoryID, err := app.readIDParam(r, "categoryId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input updateCategoryRequest
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

	category, err := app.categoryService.UpdateCategory(r.Context(), categoryID, input.Title)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "no category exists with this id")
		case errors.As(err, &common.ValidationError{}):
			app.failedValidationErrorResponse(w, r, err.(common.ValidationError))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "category updated", "category": category}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDQuery(r, "userId")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	categoryID, err := app.readIDParam(r, "categoryId")
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

	err = app.categoryService.DeleteCategory(r.Context(), categoryID, userID)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrNotFound):
			app.notFoundErrorResponse(w, r, "category not found or does not belong to this user")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "category deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
