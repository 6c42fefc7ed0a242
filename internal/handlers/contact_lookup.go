package handlers

//go:generate mockgen -source=contact_lookup.go -destination=mock_contact_lookup.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
)

const msgNotFound = "Not found!"

// ContactGetter defines the interface for a lookup by id.
type ContactGetter interface {
	Get(ctx context.Context, ownerID, id int64) (*models.Contact, error)
}

// ContactNameFinder defines the interface for lookups by name.
type ContactNameFinder interface {
	GetByFirstName(ctx context.Context, ownerID int64, firstName string) ([]models.Contact, error)
	GetByLastName(ctx context.Context, ownerID int64, lastName string) ([]models.Contact, error)
}

// ContactEmailFinder defines the interface for a lookup by email.
type ContactEmailFinder interface {
	GetByEmail(ctx context.Context, ownerID int64, email string) (*models.Contact, error)
}

// NewGetContactHandler returns an HTTP handler fetching one contact by id.
// @Summary Get contact by id
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param contact_id path int true "Contact id"
// @Success 200 {object} models.Contact "Contact"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found!"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /contacts/id/{contact_id} [get]
func NewGetContactHandler(svc ContactGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		id, err := parseContactID(r)
		if err != nil {
			writeInvalid(w, err)
			return
		}

		contact, err := svc.Get(r.Context(), user.ID, id)
		writeContact(w, r, contact, err)
	}
}

// NewFirstNameContactsHandler returns an HTTP handler listing contacts with
// the given first name.
// @Summary Find contacts by first name
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param first_name path string true "First name"
// @Success 200 {array} models.Contact "Contacts"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found!"
// @Router /contacts/first_name/{first_name} [get]
func NewFirstNameContactsHandler(svc ContactNameFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		contacts, err := svc.GetByFirstName(r.Context(), user.ID, chi.URLParam(r, "first_name"))
		writeContacts(w, r, contacts, err)
	}
}

// NewLastNameContactsHandler returns an HTTP handler listing contacts with
// the given last name.
// @Summary Find contacts by last name
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param last_name path string true "Last name"
// @Success 200 {array} models.Contact "Contacts"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found!"
// @Router /contacts/last_name/{last_name} [get]
func NewLastNameContactsHandler(svc ContactNameFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		contacts, err := svc.GetByLastName(r.Context(), user.ID, chi.URLParam(r, "last_name"))
		writeContacts(w, r, contacts, err)
	}
}

// NewEmailContactHandler returns an HTTP handler fetching the contact with
// the given email.
// @Summary Find contact by email
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} models.Contact "Contact"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found!"
// @Router /contacts/email/{email} [get]
func NewEmailContactHandler(svc ContactEmailFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		contact, err := svc.GetByEmail(r.Context(), user.ID, chi.URLParam(r, "email"))
		writeContact(w, r, contact, err)
	}
}

func writeContact(w http.ResponseWriter, r *http.Request, contact *models.Contact, err error) {
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func writeContacts(w http.ResponseWriter, r *http.Request, contacts []models.Contact, err error) {
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}
