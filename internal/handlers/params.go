package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-contacts/internal/middlewares"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

// Pagination bounds of contact listings.
const (
	DefaultLimit = 10
	MinLimit     = 10
	MaxLimit     = 500
)

// Page holds validated pagination query parameters.
type Page struct {
	Limit  int `json:"limit" validate:"gte=10,lte=500"`
	Offset int `json:"offset" validate:"gte=0"`
}

// paramError reports a malformed path or query parameter.
type paramError struct {
	name   string
	reason string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.name, e.reason)
}

// parsePage reads limit and offset from the query string.
func parsePage(r *http.Request) (Page, error) {
	page := Page{Limit: DefaultLimit}
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page, &paramError{name: "limit", reason: "must be an integer"}
		}
		page.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page, &paramError{name: "offset", reason: "must be an integer"}
		}
		page.Offset = n
	}

	return page, validator.Validate(page)
}

// parseContactID reads the contact_id path parameter.
func parseContactID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contact_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, &paramError{name: "contact_id", reason: "must be a positive integer"}
	}
	return id, nil
}

// actingUser returns the authenticated user or answers 401.
func actingUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		writeUnauthorized(w, "Not authenticated")
		return nil, false
	}
	return user, true
}
