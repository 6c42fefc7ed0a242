package handlers

//go:generate mockgen -source=contacts.go -destination=mock_contacts.go -package=handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

// ContactLister defines the interface for paginated contact listings.
type ContactLister interface {
	List(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error)
}

// ContactSearcher defines the interface for free-text contact search.
type ContactSearcher interface {
	Search(ctx context.Context, ownerID int64, query string, limit, offset int) ([]models.Contact, error)
}

// BirthdayLister defines the interface for the upcoming birthdays listing.
type BirthdayLister interface {
	UpcomingBirthdays(ctx context.Context, ownerID int64) ([]models.Contact, error)
}

// NewListContactsHandler returns an HTTP handler listing the caller's contacts.
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (10..500)" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Contact "Contacts"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /contacts [get]
func NewListContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		page, err := parsePage(r)
		if err != nil {
			writeInvalid(w, err)
			return
		}

		contacts, err := svc.List(r.Context(), user.ID, page.Limit, page.Offset)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, nonNil(contacts))
	}
}

// NewSearchContactsHandler returns an HTTP handler searching the caller's
// contacts by first name, last name or email.
// @Summary Search contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param q query string true "Substring of first name, last name or email"
// @Param limit query int false "Page size (10..500)" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Contact "Contacts"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /contacts/search [get]
func NewSearchContactsHandler(svc ContactSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeInvalid(w, &paramError{name: "q", reason: "is required"})
			return
		}

		page, err := parsePage(r)
		if err != nil {
			writeInvalid(w, err)
			return
		}

		contacts, err := svc.Search(r.Context(), user.ID, query, page.Limit, page.Offset)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, nonNil(contacts))
	}
}

// NewUpcomingBirthdaysHandler returns an HTTP handler listing contacts whose
// birthday falls within the next seven days, today included.
// @Summary Upcoming birthdays
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Contact "Contacts, soonest first"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /contacts/birthday/next_week [get]
func NewUpcomingBirthdaysHandler(svc BirthdayLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		contacts, err := svc.UpcomingBirthdays(r.Context(), user.ID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, nonNil(contacts))
	}
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil(contacts []models.Contact) []models.Contact {
	if contacts == nil {
		return []models.Contact{}
	}
	return contacts
}
