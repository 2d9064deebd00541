package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/auth"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/config"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register hashes password with bcrypt and stores a new user.
func (s *Service) Register(ctx context.Context, u User, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u.ID = uuid.NewString()
	u.PasswordHash = hash
	u.CreatedAt = time.Now()

	user, err := s.repo.Create(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Seed registers the two development accounts, admin/admin and user/user.
func (s *Service) Seed(ctx context.Context) error {
	accounts := []struct {
		user     User
		password string
	}{
		{User{UserName: "admin", Name: "Administrator", Email: "admin@example.com", Phone: "9800000001", Address: "Kathmandu", Role: "admin"}, "admin"},
		{User{UserName: "user", Name: "Test User", Email: "user@example.com", Phone: "9800000002", Address: "Pokhara", Role: "user"}, "user"},
	}
	for _, a := range accounts {
		if _, err := s.Register(ctx, a.user, a.password); err != nil {
			return err
		}
	}
	return nil
}

// Login checks the password of the user known by login and issues a token.
func (s *Service) Login(ctx context.Context, login, password string) (string, *User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to its claims.
func (s *Service) Authenticate(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Profile is the editable part of a user record.
type Profile struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Role    string
}

// CreateUser adds an account from the admin console. Username, name and
// password are required; the role defaults to "user". A username, email or
// phone already used by another account gives common.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, username string, p Profile, password string) (*User, error) {
	username = strings.TrimSpace(username)
	fields := validateProfile(p)
	if username == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, &common.ValidationError{Fields: fields}
	}

	for _, login := range []string{username, p.Email, p.Phone} {
		if err := s.ensureFree(ctx, login, ""); err != nil {
			return nil, err
		}
	}

	u := User{UserName: username, Role: "user"}
	p.apply(&u)
	return s.Register(ctx, u, password)
}

// UpdateUser replaces the profile of the user with the given id. The
// username and password are left alone, as is the role when p.Role is "".
func (s *Service) UpdateUser(ctx context.Context, id string, p Profile) (*User, error) {
	if fields := validateProfile(p); len(fields) > 0 {
		return nil, &common.ValidationError{Fields: fields}
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, login := range []string{p.Email, p.Phone} {
		if err := s.ensureFree(ctx, login, id); err != nil {
			return nil, err
		}
	}

	p.apply(u)
	return s.repo.Update(ctx, u)
}

// DeleteUser removes the user with the given id. An admin cannot delete the
// account they are signed in with.
func (s *Service) DeleteUser(ctx context.Context, id, actingID string) error {
	if id == actingID {
		return common.NewValidationError("id", "you cannot delete your own account")
	}
	return s.repo.Delete(ctx, id)
}

// ensureFree fails when login already names a user other than self.
func (s *Service) ensureFree(ctx context.Context, login, self string) error {
	if login == "" {
		return nil
	}
	u, err := s.repo.GetUserByLogin(ctx, login)
	switch {
	case errors.Is(err, common.ErrNotFound):
		return nil
	case err != nil:
		return err
	case u.ID == self:
		return nil
	}
	return fmt.Errorf("%s: %w", login, common.ErrAlreadyExists)
}

func validateProfile(p Profile) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "name is required"
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		fields["email"] = "email is not valid"
	}
	switch p.Role {
	case "", "user", "admin":
	default:
		fields["role"] = "role must be user or admin"
	}
	return fields
}

func (p Profile) apply(u *User) {
	u.Name = strings.TrimSpace(p.Name)
	u.Email = strings.TrimSpace(p.Email)
	u.Phone = strings.TrimSpace(p.Phone)
	u.Address = strings.TrimSpace(p.Address)
	if p.Role != "" {
		u.Role = p.Role
	}
}
