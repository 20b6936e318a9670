package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fieldtrack/fieldtrack-api/internal/constants"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidRole   = errors.New("role is not one of the allowed values")
	ErrSelfDelete    = errors.New("you cannot delete your own account")
)

// BulkItemError records why one item of a bulk call was rejected.
type BulkItemError struct {
	Index  int     `json:"index"`
	UserID *uint64 `json:"id,omitempty"`
	Detail string  `json:"detail"`
}

// BulkValidationError aggregates the per-item failures that caused an
// all-or-nothing bulk create to be rejected.
type BulkValidationError struct {
	Items []BulkItemError
}

func (e *BulkValidationError) Error() string {
	return fmt.Sprintf("bulk create rejected: %d invalid item(s)", len(e.Items))
}

// UserService handles account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the fields accepted when creating a user.
type CreateUserInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Phone           *string
	Role            models.UserRole
	IsActive        *bool
}

// UpdateUserInput represents a partial user update. Nil fields are left
// untouched.
type UpdateUserInput struct {
	ID              *uint64
	Username        *string
	Email           *string
	Password        *string
	ConfirmPassword *string
	FullName        *string
	Phone           *string
	Role            *models.UserRole
	IsActive        *bool
}

// CreateUser validates and persists a single account. Only an admin actor
// may grant a role other than "user"; everyone else gets the default.
func (s *UserService) CreateUser(input CreateUserInput, actorIsAdmin bool) (*models.User, error) {
	user, err := s.buildUser(input, actorIsAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(user.Username, user.Email, 0); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns users matching the filter.
func (s *UserService) ListUsers(filter repository.UserFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUser applies a partial update to one user.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput, actorIsAdmin bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.applyUpdate(user, input, actorIsAdmin); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser hard-deletes one user.
func (s *UserService) DeleteUser(id uint64) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// BulkCreate creates every item or none. All items are validated up front;
// any failure rejects the batch before a single row is written, and the
// inserts share one transaction so a late uniqueness conflict rolls back
// the rest.
func (s *UserService) BulkCreate(items []CreateUserInput, actorIsAdmin bool) ([]models.User, error) {
	var itemErrors []BulkItemError
	users := make([]*models.User, 0, len(items))
	seenUsernames := make(map[string]struct{}, len(items))
	seenEmails := make(map[string]struct{}, len(items))

	for i, item := range items {
		user, err := s.buildUser(item, actorIsAdmin)
		if err == nil {
			if _, dup := seenUsernames[user.Username]; dup {
				err = ErrUsernameTaken
			} else if _, dup := seenEmails[user.Email]; dup {
				err = ErrEmailTaken
			} else {
				err = s.checkUnique(user.Username, user.Email, 0)
			}
		}
		if err != nil {
			itemErrors = append(itemErrors, BulkItemError{Index: i, Detail: err.Error()})
			continue
		}
		seenUsernames[user.Username] = struct{}{}
		seenEmails[user.Email] = struct{}{}
		users = append(users, user)
	}

	if len(itemErrors) > 0 {
		return nil, &BulkValidationError{Items: itemErrors}
	}

	if err := s.userRepo.CreateAll(users); err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}

	created := make([]models.User, len(users))
	for i, u := range users {
		created[i] = *u
	}
	return created, nil
}

// BulkUpdate applies each item independently. Items without an id, with an
// unknown id, or with an invalid patch are recorded as errors and skipped;
// the rest are persisted. Callers must inspect both collections.
func (s *UserService) BulkUpdate(items []UpdateUserInput, actorIsAdmin bool) ([]models.User, []BulkItemError) {
	var updated []models.User
	var itemErrors []BulkItemError

	for i, item := range items {
		if item.ID == nil {
			itemErrors = append(itemErrors, BulkItemError{Index: i, Detail: "each item must include an 'id'"})
			continue
		}

		user, err := s.userRepo.FindByID(*item.ID)
		if err != nil {
			detail := "user not found"
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				detail = err.Error()
			}
			itemErrors = append(itemErrors, BulkItemError{Index: i, UserID: item.ID, Detail: detail})
			continue
		}

		if err := s.applyUpdate(user, item, actorIsAdmin); err != nil {
			itemErrors = append(itemErrors, BulkItemError{Index: i, UserID: item.ID, Detail: err.Error()})
			continue
		}

		if err := s.userRepo.Update(user); err != nil {
			itemErrors = append(itemErrors, BulkItemError{Index: i, UserID: item.ID, Detail: err.Error()})
			continue
		}

		updated = append(updated, *user)
	}

	return updated, itemErrors
}

// BulkDelete removes all matching users in one operation. The actor may not
// appear in the id list; when they do, nothing is deleted.
func (s *UserService) BulkDelete(actorID uint64, ids []uint64) (int64, error) {
	for _, id := range ids {
		if id == actorID {
			return 0, ErrSelfDelete
		}
	}

	deleted, err := s.userRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return deleted, nil
}

// buildUser validates a create input and materializes the user row.
func (s *UserService) buildUser(input CreateUserInput, actorIsAdmin bool) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	// An empty username falls back to the email address.
	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = email
	}

	if input.Password == "" {
		return nil, errors.New("password is required when creating a user")
	}
	if input.ConfirmPassword != "" && input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !actorIsAdmin {
		role = models.RoleUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         role,
		IsActive:     isActive,
	}, nil
}

// applyUpdate mutates user in place from a partial input.
func (s *UserService) applyUpdate(user *models.User, input UpdateUserInput, actorIsAdmin bool) error {
	if input.Username != nil && *input.Username != user.Username {
		if err := s.checkUnique(*input.Username, "", user.ID); err != nil {
			return err
		}
		user.Username = *input.Username
	}
	if input.Email != nil && *input.Email != user.Email {
		if strings.TrimSpace(*input.Email) == "" {
			return ErrEmailRequired
		}
		if err := s.checkUnique("", *input.Email, user.ID); err != nil {
			return err
		}
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return ErrInvalidRole
		}
		if actorIsAdmin {
			user.Role = *input.Role
		}
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		if *input.Password == "" {
			return errors.New("password cannot be empty")
		}
		if input.ConfirmPassword == nil || *input.Password != *input.ConfirmPassword {
			return ErrPasswordMismatch
		}
		if len(*input.Password) < constants.MinPasswordLength {
			return ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	return nil
}

// checkUnique verifies username/email are unused by any other account.
// Empty values are skipped; excludeID ignores the row being updated.
func (s *UserService) checkUnique(username, email string, excludeID uint64) error {
	if username != "" {
		existing, err := s.userRepo.FindByUsername(username)
		if err == nil && existing.ID != excludeID {
			return ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check username: %w", err)
		}
	}
	if email != "" {
		existing, err := s.userRepo.FindByEmail(email)
		if err == nil && existing.ID != excludeID {
			return ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}
	}
	return nil
}
