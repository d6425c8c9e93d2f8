package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	providerRepo "pawhub/database/repository/provider"
	"pawhub/models"
	"pawhub/utils"
)

var (
	ErrEmailTaken         = errors.New("a provider with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProviderNotFound   = errors.New("provider not found")
	ErrUnknownType        = errors.New("provider type must be vet, groomer or trainer")
	ErrUnknownApproval    = errors.New("invalid approval status")
	ErrInvalidSchedule    = errors.New("invalid schedule")
)

// AuthResult carries the signed token returned after provider registration
// or login.
type AuthResult struct {
	Provider models.Provider `json:"provider"`
	Token    string          `json:"token"`
}

// ProviderService manages vet/groomer/trainer accounts and their schedules.
type ProviderService interface {
	Register(p models.Provider) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetProviderByID(id string) (*models.Provider, error)
	UpdateProfile(id string, profile models.Profile, fee *models.Fee) (*models.Provider, error)
	SetDayAvailability(id, weekday string, day models.DayAvailability) error
	SetApprovalStatus(id, status string) error
	ListProviders(providerType string) ([]models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func validType(t string) bool {
	switch t {
	case models.ProviderTypeVet, models.ProviderTypeGroomer, models.ProviderTypeTrainer:
		return true
	}
	return false
}

func (s *DefaultProviderService) Register(p models.Provider) (*AuthResult, error) {
	if !validType(p.Profile.Type) {
		return nil, ErrUnknownType
	}
	if existing, _ := s.Repo.GetByEmail(p.Profile.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.ID = uuid.New().String()
	p.Security = models.Security{PasswordHash: string(hash)}
	p.IsActive = true
	p.ApprovalStatus = models.ApprovalPending
	if p.Availability == nil {
		p.Availability = models.Availability{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	return s.issueToken(p)
}

func (s *DefaultProviderService) Authenticate(email, password string) (*AuthResult, error) {
	p, err := s.Repo.GetByEmail(email)
	if err != nil || p == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.Security.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(*p)
}

func (s *DefaultProviderService) issueToken(p models.Provider) (*AuthResult, error) {
	token, err := utils.GenerateToken(p.ID, models.RoleSeller, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateWithDocument(p.ID, bson.M{
		"$set": bson.M{"security.tokenHash": tokenHash, "updatedAt": time.Now()},
	}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+p.ID, tokenHash, time.Hour).Err()

	p.Security = models.Security{}
	return &AuthResult{Provider: p, Token: token}, nil
}

func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	p, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	p.Security = models.Security{}
	return p, nil
}

// fetch maps a missing document to ErrProviderNotFound; infrastructure
// failures surface as themselves so the handler reports a 500, not a 404.
func (s *DefaultProviderService) fetch(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if p == nil {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

func (s *DefaultProviderService) UpdateProfile(id string, profile models.Profile, fee *models.Fee) (*models.Provider, error) {
	existing, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	// Type and email are fixed at registration.
	profile.Type = existing.Profile.Type
	profile.Email = existing.Profile.Email
	existing.Profile = profile
	if fee != nil {
		existing.Fee = *fee
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	existing.Security = models.Security{}
	return existing, nil
}

func (s *DefaultProviderService) SetApprovalStatus(id, status string) error {
	switch status {
	case models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		return fmt.Errorf("%w: unknown approval status %q", ErrUnknownApproval, status)
	}
	if _, err := s.fetch(id); err != nil {
		return err
	}
	return s.Repo.UpdateWithDocument(id, bson.M{
		"$set": bson.M{"approvalStatus": status, "updatedAt": time.Now()},
	})
}

func (s *DefaultProviderService) ListProviders(providerType string) ([]models.Provider, error) {
	providers, err := s.Repo.List(providerType)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		providers[i].Security = models.Security{}
	}
	return providers, nil
}
