package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// content engine
	router.HandlerFunc(http.MethodPost, "/post", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/post/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/post/:id/views", app.incrementViewsHandler)
	router.HandlerFunc(http.MethodDelete, "/post/:id", app.deletePostHandler)
	router.HandlerFunc(http.MethodPut, "/publish/:id", app.publishPostHandler)
	router.HandlerFunc(http.MethodGet, "/feed", app.feedHandler)

	// users
	router.HandlerFunc(http.MethodGet, "/users", app.listUsersHandler)
	router.HandlerFunc(http.MethodGet, "/user/:id/drafts", app.listDraftsHandler)

	return app.recoverPanic(app.rateLimit(app.logRequest(router)))
}
