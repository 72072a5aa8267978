// Package memory is an in-memory stand-in for the PostgreSQL repositories, used by tests
// that need stateful storage behind the real services.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
)

var (
	_ repository.TransactionManager = (*Store)(nil)
	_ repository.RepositoryFactory  = (*Store)(nil)
	_ repository.UserRepository     = (*Store)(nil)
)

// Store holds users keyed by email and donations in insertion order. Transactions
// are serialised by the caller's goroutine but not isolated.
type Store struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	donations []*entity.Donation
	creates   int
}

func NewStore() *Store {
	return &Store{users: map[string]*entity.User{}}
}

func (s *Store) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *Store) UserRepo() repository.UserRepository         { return s }
func (s *Store) DonationRepo() repository.DonationRepository { return &Donations{s: s} }

// UserCreates counts successful user inserts.
func (s *Store) UserCreates() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creates
}

// StoredUser returns the raw row for email, digest included.
func (s *Store) StoredUser(email string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil, false
	}
	clone := *u

	return &clone, true
}

func (s *Store) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u

	return &clone, nil
}

// Create enforces email uniqueness the way the users.email unique index does.
func (s *Store) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "unique index")
	}

	s.creates++
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.Email] = &clone

	return nil
}

// Donations is the donation side of Store.
type Donations struct {
	s *Store
}

var _ repository.DonationRepository = (*Donations)(nil)

func (d *Donations) Create(_ context.Context, donation *entity.Donation) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	donation.ID = uuid.New()
	donation.CreatedAt = time.Now()
	clone := *donation
	d.s.donations = append(d.s.donations, &clone)

	return nil
}

func (d *Donations) FindByID(_ context.Context, id uuid.UUID) (*entity.Donation, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	for _, donation := range d.s.donations {
		if donation.ID == id {
			clone := *donation

			return &clone, nil
		}
	}

	return nil, repository.ErrDonationNotFound
}

func (d *Donations) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Donation, error) {
	all, _ := d.ListAll(ctx)
	mine := slices.DeleteFunc(all, func(donation *entity.Donation) bool { return donation.UserID != userID })
	for _, donation := range mine {
		donation.UserName = ""
	}

	return mine, nil
}

// ListAll joins the owner's name and sorts by donation date, latest first.
func (d *Donations) ListAll(_ context.Context) ([]*entity.Donation, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	out := make([]*entity.Donation, 0, len(d.s.donations))
	for _, donation := range d.s.donations {
		clone := *donation
		for _, u := range d.s.users {
			if u.ID == donation.UserID {
				clone.UserName = u.Name
			}
		}
		out = append(out, &clone)
	}
	slices.SortStableFunc(out, func(a, b *entity.Donation) int {
		return b.DonationDate.Compare(a.DonationDate)
	})

	return out, nil
}
