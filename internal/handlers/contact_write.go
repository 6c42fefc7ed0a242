package handlers

//go:generate mockgen -source=contact_write.go -destination=mock_contact_write.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/sbilibin2017/gw-contacts/internal/validator"
)

const (
	msgContactExists      = "Contact with this email already exists"
	msgNotFoundOrNotOwned = "Not found or not authorized!"
)

// ContactCreator defines the interface for creating contacts.
type ContactCreator interface {
	Create(ctx context.Context, ownerID int64, in models.ContactInput) (*models.Contact, error)
}

// ContactUpdater defines the interface for replacing a contact.
type ContactUpdater interface {
	Update(ctx context.Context, ownerID, id int64, in models.ContactInput) (*models.Contact, error)
}

// ContactDeleter defines the interface for deleting a contact.
type ContactDeleter interface {
	Delete(ctx context.Context, ownerID, id int64) (*models.Contact, error)
}

// NewCreateContactHandler returns an HTTP handler creating a contact owned by the caller.
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contact body models.ContactInput true "Contact"
// @Success 201 {object} models.Contact "Created contact"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 409 {object} handlers.ErrorResponse "Contact with this email already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /contacts [post]
func NewCreateContactHandler(svc ContactCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		var in models.ContactInput
		if err := validator.DecodeAndValidate(r, &in); err != nil {
			writeInvalid(w, err)
			return
		}

		contact, err := svc.Create(r.Context(), user.ID, in)
		if err != nil {
			writeWriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, contact)
	}
}

// NewUpdateContactHandler returns an HTTP handler replacing a contact owned by the caller.
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contact_id path int true "Contact id"
// @Param contact body models.ContactInput true "Contact"
// @Success 200 {object} models.Contact "Updated contact"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not authorized!"
// @Failure 409 {object} handlers.ErrorResponse "Contact with this email already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Router /contacts/id/{contact_id} [put]
func NewUpdateContactHandler(svc ContactUpdater) http.HandlerFunc {
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

		var in models.ContactInput
		if err := validator.DecodeAndValidate(r, &in); err != nil {
			writeInvalid(w, err)
			return
		}

		contact, err := svc.Update(r.Context(), user.ID, id, in)
		if err != nil {
			writeWriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, contact)
	}
}

// NewDeleteContactHandler returns an HTTP handler deleting a contact owned by the caller.
// @Summary Delete contact
// @Tags contacts
// @Security BearerAuth
// @Param contact_id path int true "Contact id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not authorized!"
// @Router /contacts/id/{contact_id} [delete]
func NewDeleteContactHandler(svc ContactDeleter) http.HandlerFunc {
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

		if _, err := svc.Delete(r.Context(), user.ID, id); err != nil {
			writeWriteError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		writeError(w, http.StatusNotFound, msgNotFoundOrNotOwned)
	case errors.Is(err, services.ErrContactAlreadyExists):
		writeError(w, http.StatusConflict, msgContactExists)
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}
