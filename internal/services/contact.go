package services

//go:generate mockgen -source=contact.go -destination=mock_contact.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
)

// UpcomingBirthdayDays is how far ahead UpcomingBirthdays looks, today included.
const UpcomingBirthdayDays = 7

// ContactReader defines read-only operations for contacts. Every method is
// scoped to a single owner.
type ContactReader interface {
	List(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error)
	GetByID(ctx context.Context, ownerID, id int64) (*models.Contact, error)
	GetByFirstName(ctx context.Context, ownerID int64, firstName string) ([]models.Contact, error)
	GetByLastName(ctx context.Context, ownerID int64, lastName string) ([]models.Contact, error)
	GetByEmail(ctx context.Context, ownerID int64, email string) (*models.Contact, error)
	Search(ctx context.Context, ownerID int64, query string, limit, offset int) ([]models.Contact, error)
	ListAll(ctx context.Context, ownerID int64) ([]models.Contact, error)
}

// ContactWriter defines write operations for contacts. Update and Delete
// match on both id and owner and return nil when no row matched.
type ContactWriter interface {
	Save(ctx context.Context, ownerID int64, in models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, ownerID, id int64, in models.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, ownerID, id int64) (*models.Contact, error)
}

// ContactService manages the contacts of the acting user.
type ContactService struct {
	reader ContactReader
	writer ContactWriter
	now    func() time.Time
}

// ContactOpt configures a ContactService.
type ContactOpt func(*ContactService)

// WithClock overrides the time source used for birthday lookups.
func WithClock(now func() time.Time) ContactOpt {
	return func(s *ContactService) {
		s.now = now
	}
}

// NewContactService creates a new ContactService.
func NewContactService(reader ContactReader, writer ContactWriter, opts ...ContactOpt) *ContactService {
	s := &ContactService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a page of the owner's contacts.
func (s *ContactService) List(ctx context.Context, ownerID int64, limit, offset int) ([]models.Contact, error) {
	contacts, err := s.reader.List(ctx, ownerID, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list contacts", "user_id", ownerID, "err", err)
		return nil, err
	}
	return contacts, nil
}

// Get returns a single contact of the owner.
func (s *ContactService) Get(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	contact, err := s.reader.GetByID(ctx, ownerID, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contact", "user_id", ownerID, "contact_id", id, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// GetByFirstName returns the owner's contacts with an exact first name.
func (s *ContactService) GetByFirstName(ctx context.Context, ownerID int64, firstName string) ([]models.Contact, error) {
	contacts, err := s.reader.GetByFirstName(ctx, ownerID, firstName)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contacts by first name", "user_id", ownerID, "err", err)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return contacts, nil
}

// GetByLastName returns the owner's contacts with an exact last name.
func (s *ContactService) GetByLastName(ctx context.Context, ownerID int64, lastName string) ([]models.Contact, error) {
	contacts, err := s.reader.GetByLastName(ctx, ownerID, lastName)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contacts by last name", "user_id", ownerID, "err", err)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return contacts, nil
}

// GetByEmail returns the owner's contact with the given email.
func (s *ContactService) GetByEmail(ctx context.Context, ownerID int64, email string) (*models.Contact, error) {
	contact, err := s.reader.GetByEmail(ctx, ownerID, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contact by email", "user_id", ownerID, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Search matches the query against names and email, case-insensitively.
func (s *ContactService) Search(ctx context.Context, ownerID int64, query string, limit, offset int) ([]models.Contact, error) {
	contacts, err := s.reader.Search(ctx, ownerID, query, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to search contacts", "user_id", ownerID, "err", err)
		return nil, err
	}
	return contacts, nil
}

// UpcomingBirthdays returns the owner's contacts whose next birthday falls
// within UpcomingBirthdayDays of today, ordered by how soon it comes.
func (s *ContactService) UpcomingBirthdays(ctx context.Context, ownerID int64) ([]models.Contact, error) {
	contacts, err := s.reader.ListAll(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list contacts", "user_id", ownerID, "err", err)
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	buckets := make([][]models.Contact, UpcomingBirthdayDays+1)
	for _, c := range contacts {
		if c.Birthday.IsZero() {
			continue
		}
		days := daysUntilBirthday(today, c.Birthday)
		if days <= UpcomingBirthdayDays {
			buckets[days] = append(buckets[days], c)
		}
	}

	result := make([]models.Contact, 0)
	for _, b := range buckets {
		result = append(result, b...)
	}
	return result, nil
}

// daysUntilBirthday counts days from today to the next anniversary of
// birthday, rolling into next year once this year's has passed.
func daysUntilBirthday(today time.Time, birthday models.Date) int {
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24)
}

// Create stores a new contact owned by ownerID.
func (s *ContactService) Create(ctx context.Context, ownerID int64, in models.ContactInput) (*models.Contact, error) {
	if in.Other == "" {
		in.Other = models.DefaultOther
	}

	contact, err := s.writer.Save(ctx, ownerID, in)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrContactAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to create contact", "user_id", ownerID, "err", err)
		return nil, err
	}
	return contact, nil
}

// Update replaces the fields of a contact the owner holds.
func (s *ContactService) Update(ctx context.Context, ownerID, id int64, in models.ContactInput) (*models.Contact, error) {
	if in.Other == "" {
		in.Other = models.DefaultOther
	}

	contact, err := s.writer.Update(ctx, ownerID, id, in)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrContactAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to update contact", "user_id", ownerID, "contact_id", id, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Delete removes a contact the owner holds and returns it.
func (s *ContactService) Delete(ctx context.Context, ownerID, id int64) (*models.Contact, error) {
	contact, err := s.writer.Delete(ctx, ownerID, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete contact", "user_id", ownerID, "contact_id", id, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}
