package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.routeNotFoundHandler)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// users
	router.HandlerFunc(http.MethodGet, "/users", app.listUsersHandler)
	router.HandlerFunc(http.MethodPost, "/users", app.createUserHandler)
	router.HandlerFunc(http.MethodPatch, "/users", app.updateUsernameHandler)
	router.HandlerFunc(http.MethodDelete, "/users", app.deleteUserHandler)

	// categories, scoped to a user via the userId query parameter
	router.HandlerFunc(http.MethodGet, "/categories", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/categories", app.createCategoryHandler)
	router.HandlerFunc(http.MethodPatch, "/categories/:categoryId", app.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/categories/:categoryId", app.deleteCategoryHandler)

	// blogs, scoped to a user and category
	router.HandlerFunc(http.MethodGet, "/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/blogs", app.createBlogHandler)
	router.HandlerFunc(http.MethodGet, "/blogs/:blogId", app.getBlogHandler)
	router.HandlerFunc(http.MethodPatch, "/blogs/:blogId", app.updateBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/blogs/:blogId", app.deleteBlogHandler)

	return app.recoverPanic(app.logRequest(router))
}
