package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-contacts/internal/middlewares"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

var testUser = &models.User{ID: 7, Username: "alice_a", Email: "alice@example.com", Verification: true}

// asUser attaches the acting user the way AuthMiddleware does.
func asUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(middlewares.WithUser(req.Context(), user))
}

// withURLParams sets chi path parameters on a request.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleContact(id int64, first string) models.Contact {
	return models.Contact{
		ID:          id,
		FirstName:   first,
		LastName:    "Doe",
		Email:       first + "@example.com",
		PhoneNumber: "+380501234567",
		Birthday:    models.NewDate(1990, 5, 17),
		Other:       models.DefaultOther,
	}
}
