package main

import (
	"errors"
	"net/http"

	"inkpress/internal/common"
	"inkpress/internal/contentservice"
)

type createPostRequest struct {
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	AuthorEmail string  `json:"authorEmail"`
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var input createPostRequest

	// Parse the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	req := &contentservice.CreatePostRequest{
		Title:       input.Title,
		Content:     input.Content,
		AuthorEmail: input.AuthorEmail,
	}

	// Call the content service
	post, err := app.contentService.CreatePost(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, contentservice.ErrAuthorNotFound):
			app.authorNotFoundErrorResponse(w, r, input.AuthorEmail)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) incrementViewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.contentService.IncrementViewCount(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contentservice.ErrPostNotFound):
			app.postNotFoundErrorResponse(w, r, id)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) publishPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.contentService.TogglePublished(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contentservice.ErrPostNotFound):
			app.postNotFoundErrorResponse(w, r, id)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.contentService.DeletePost(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contentservice.ErrPostNotFound):
			app.postNotFoundErrorResponse(w, r, id)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.contentService.GetPost(r.Context(), id)
	if err != nil {
		switch {
		// a missing post reads as null, not as a failure
		case errors.Is(err, contentservice.ErrPostNotFound):
			err = app.writeJSON(w, http.StatusOK, envelope{"post": nil}, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.ListUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"users": users}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listDraftsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	drafts, err := app.contentService.DraftsByUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contentservice.ErrUserNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"drafts": drafts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) feedHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// normalization of skip/take/orderBy is the engine's job; the transport
	// only extracts the raw strings
	query := contentservice.NewFeedQuery(
		params.Get("searchString"),
		params.Get("skip"),
		params.Get("take"),
		params.Get("orderBy"),
	)

	posts, err := app.contentService.Feed(r.Context(), query)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"feed": posts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
