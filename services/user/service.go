package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	userRepo "pawhub/database/repository/user"
	"pawhub/models"
	"pawhub/utils"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthResult carries the signed token returned to the client after
// registration or login.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService manages platform accounts.
type UserService interface {
	Register(u models.User) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(u models.User) (*models.User, error)
	RevokeToken(id string) error
	ListUsers(role string) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(u models.User) (*AuthResult, error) {
	if existing, _ := s.Repo.GetByEmail(u.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u.ID = uuid.New().String()
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.Security = models.Security{PasswordHash: string(hash)}
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Security.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(*u)
}

func (s *DefaultUserService) issueToken(u models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(u.ID, tokenHash); err != nil {
		return nil, err
	}

	// Warm the auth cache so the first authenticated request skips the DB.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + u.ID
	_ = utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, time.Hour).Err()

	u.Security = models.Security{}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	u.Security = models.Security{}
	return u, nil
}

// fetch maps a missing document to ErrUserNotFound; infrastructure failures
// surface as themselves so the handler reports a 500, not a 404.
func (s *DefaultUserService) fetch(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *DefaultUserService) UpdateUser(u models.User) (*models.User, error) {
	existing, err := s.fetch(u.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = u.Name
	existing.PhoneNumber = u.PhoneNumber
	if u.Pets != nil {
		existing.Pets = u.Pets
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	existing.Security = models.Security{}
	return existing, nil
}

func (s *DefaultUserService) RevokeToken(id string) error {
	if err := s.Repo.SetTokenHash(id, ""); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id).Err()
}

func (s *DefaultUserService) ListUsers(role string) ([]models.User, error) {
	users, err := s.Repo.List(role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Security = models.Security{}
	}
	return users, nil
}
