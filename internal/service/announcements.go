// Package service holds the announcement rules: credential gating, message
// and date validation, and the activity-window semantics. It talks to
// storage only through the interfaces below, so it can be exercised against
// in-memory fakes as well as the Mongo-backed repo.
package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/announcements-service/internal/domain"
	"github.com/mergington/announcements-service/internal/timeutil"
)

// AnnouncementStore is the record-store contract the service needs.
// Lookups return (nil, nil) when the document is absent.
type AnnouncementStore interface {
	Insert(ctx context.Context, a *domain.Announcement) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]domain.Announcement, error)
	FindActive(ctx context.Context, now time.Time) ([]domain.Announcement, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, message string, start *time.Time, expiration time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// TeacherStore resolves a username to a principal; (nil, nil) when unknown.
type TeacherStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.Teacher, error)
}

type Service struct {
	announcements AnnouncementStore
	teachers      TeacherStore
	clock         func() time.Time
}

func New(announcements AnnouncementStore, teachers TeacherStore) *Service {
	return &Service{
		announcements: announcements,
		teachers:      teachers,
		clock:         time.Now,
	}
}

// WithClock swaps the time source; tests pin it to a fixed instant.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// Input carries the raw boundary fields of create and update. Dates stay
// strings here; parsing happens in exactly one place for both operations.
type Input struct {
	Message        string
	ExpirationDate string
	StartDate      *string
}

// authenticate is the shared credential gate: the username must be supplied
// and must exist in the teachers collection. There are no role distinctions.
func (s *Service) authenticate(ctx context.Context, username string) error {
	if username == "" {
		return ErrNoCredentials
	}
	t, err := s.teachers.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrUnknownTeacher
	}
	return nil
}

// validate checks message and dates. checkFuture is true on create only:
// update deliberately skips the expiration-in-the-future rule so already
// expired announcements can still be corrected.
func (s *Service) validate(in Input, checkFuture bool) (msg string, start *time.Time, expiration time.Time, err error) {
	msg = strings.TrimSpace(in.Message)
	if msg == "" {
		return "", nil, time.Time{}, invalidArg("Message cannot be empty")
	}
	expiration, perr := timeutil.Parse(in.ExpirationDate)
	if perr != nil {
		return "", nil, time.Time{}, invalidArg("Invalid expiration_date format. Use ISO format.")
	}
	if in.StartDate != nil {
		t, perr := timeutil.Parse(*in.StartDate)
		if perr != nil {
			return "", nil, time.Time{}, invalidArg("Invalid start_date format. Use ISO format.")
		}
		start = &t
	}
	if checkFuture && !expiration.After(s.clock()) {
		return "", nil, time.Time{}, invalidArg("Expiration date must be in the future")
	}
	if start != nil && !start.Before(expiration) {
		return "", nil, time.Time{}, invalidArg("Start date must be before expiration date")
	}
	return msg, start, expiration, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, invalidArg("Invalid announcement ID format")
	}
	return oid, nil
}

// ListActive returns the announcements whose window contains a single "now"
// computed per call, newest first. Public: no credential needed.
func (s *Service) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.FindActive(ctx, s.clock().UTC())
}

// ListAll returns every announcement regardless of window, newest first.
func (s *Service) ListAll(ctx context.Context, username string) ([]domain.Announcement, error) {
	if err := s.authenticate(ctx, username); err != nil {
		return nil, err
	}
	return s.announcements.FindAll(ctx)
}

// Create persists a new announcement and returns it with the assigned id.
func (s *Service) Create(ctx context.Context, username string, in Input) (*domain.Announcement, error) {
	if err := s.authenticate(ctx, username); err != nil {
		return nil, err
	}
	msg, start, expiration, err := s.validate(in, true)
	if err != nil {
		return nil, err
	}
	a := &domain.Announcement{
		Message:        msg,
		StartDate:      start,
		ExpirationDate: expiration,
		// millisecond precision, Mongo's native resolution, so the value
		// returned here equals every later re-read of the document
		CreatedAt: s.clock().UTC().Truncate(time.Millisecond),
	}
	if err := s.announcements.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces message and both dates in place; id and created_at never
// change. The record is re-read from the store after the write.
func (s *Service) Update(ctx context.Context, username, id string, in Input) (*domain.Announcement, error) {
	if err := s.authenticate(ctx, username); err != nil {
		return nil, err
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	existing, err := s.announcements.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	msg, start, expiration, err := s.validate(in, false)
	if err != nil {
		return nil, err
	}
	if err := s.announcements.UpdateFields(ctx, oid, msg, start, expiration); err != nil {
		return nil, err
	}
	// a concurrent delete can win between the $set and the re-read
	updated, err := s.announcements.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete permanently removes the announcement.
func (s *Service) Delete(ctx context.Context, username, id string) error {
	if err := s.authenticate(ctx, username); err != nil {
		return err
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := s.announcements.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	deleted, err := s.announcements.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
