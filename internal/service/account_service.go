package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/credentials"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util/errorutil"
)

// AccountService coordinates account CRUD and password flows. Uniqueness of
// email is enforced here, before insert/update; the store itself does not
// enforce it. Two concurrent creates for the same email can therefore both
// pass the check, an accepted limitation of this design.
type AccountService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(cfg config.SecurityConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{
		users:      users,
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// ListUsers returns all accounts.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single account by id.
func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnprocessableEntity("Unknown user")
		}
		return nil, err
	}
	return user, nil
}

// CreateUser validates the confirmation and email uniqueness, hashes the
// password and inserts the account.
func (s *AccountService) CreateUser(ctx context.Context, name, email, password, passwordConfirm string) (*domain.User, error) {
	if password != passwordConfirm {
		return nil, apperrors.NewInvalidPassword("Invalid Password, Try Again")
	}

	taken, err := s.emailTaken(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewEmailAlreadyTaken("This email is already taken, try use another")
	}

	hash, err := credentials.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewUnprocessableEntity("Failed to create user")
	}

	s.publish(ctx, events.EventUserCreated, user.ID, events.UserCreatedPayload{Name: user.Name, Email: user.Email})
	return user, nil
}

// UpdateUser changes name and email of an existing account. The uniqueness
// check excludes the account's own current email, so an unchanged email never
// blocks the update.
func (s *AccountService) UpdateUser(ctx context.Context, id, name, email string) error {
	taken, err := s.emailTaken(ctx, email, id)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewEmailAlreadyTaken("This email is already taken, try use another")
	}

	if err := s.users.UpdateProfile(ctx, id, name, email); err != nil {
		return apperrors.NewUnprocessableEntity("Failed to update user")
	}

	s.publish(ctx, events.EventUserUpdated, id, events.UserUpdatedPayload{Name: name, Email: email})
	return nil
}

// DeleteUser removes an account.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.NewUnprocessableEntity("Failed to delete user")
	}

	s.publish(ctx, events.EventUserDeleted, id, nil)
	return nil
}

// ChangeUserPassword verifies the old password before storing a hash of the
// new one. Unknown ids are verified against a filler hash so the response
// never reveals whether the account exists.
func (s *AccountService) ChangeUserPassword(ctx context.Context, id, oldPassword, newPassword, passwordConfirm string) error {
	if newPassword != passwordConfirm {
		return apperrors.NewInvalidPassword("Invalid Password, Try Again")
	}

	stored := credentials.FillerHash
	user, err := s.users.GetByID(ctx, id)
	if err == nil {
		stored = user.PasswordHash
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if !credentials.Matches(stored, oldPassword) {
		return apperrors.NewUnprocessableEntity("Failed to change user password")
	}

	hash, err := credentials.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return apperrors.NewUnprocessableEntity("Failed to change user password")
	}

	s.publish(ctx, events.EventUserPasswordChanged, id, nil)
	return nil
}

// emailTaken reports whether another account already owns the email.
func (s *AccountService) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
