package donation

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	donationRepo "pawhub/database/repository/donation"
	"pawhub/models"
	"pawhub/utils"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrAlreadyClaimed   = errors.New("donation has already been claimed")
	ErrOwnDonation      = errors.New("cannot claim your own donation")
)

// DonationService manages food donation listings and geofenced search.
type DonationService interface {
	CreateDonation(donorID string, d models.Donation) (*models.Donation, error)
	// SearchNearby returns available donations within radiusKm of the query
	// point, nearest first.
	SearchNearby(lat, lng, radiusKm float64) ([]models.DonationView, error)
	ClaimDonation(id, userID string) (*models.Donation, error)
	ListByDonor(donorID string) ([]models.Donation, error)
}

// DefaultDonationService is the production implementation.
type DefaultDonationService struct {
	Repo donationRepo.DonationRepository
}

func (s *DefaultDonationService) CreateDonation(donorID string, d models.Donation) (*models.Donation, error) {
	now := time.Now()
	d.ID = uuid.New().String()
	d.DonorID = donorID
	d.Status = models.DonationAvailable
	d.ClaimedBy = ""
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("donation listed",
		zap.String("donationID", d.ID), zap.String("donorID", donorID))
	return &d, nil
}

func (s *DefaultDonationService) SearchNearby(lat, lng, radiusKm float64) ([]models.DonationView, error) {
	available, err := s.Repo.ListByStatus(models.DonationAvailable)
	if err != nil {
		return nil, err
	}

	views := make([]models.DonationView, 0, len(available))
	for _, d := range available {
		dist := HaversineKm(lat, lng, d.LocationGeo.Latitude(), d.LocationGeo.Longitude())
		if dist <= radiusKm {
			views = append(views, models.DonationView{Donation: d, DistanceKm: dist})
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].DistanceKm < views[j].DistanceKm })
	return views, nil
}

func (s *DefaultDonationService) ClaimDonation(id, userID string) (*models.Donation, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	if d == nil {
		return nil, ErrDonationNotFound
	}
	if d.DonorID == userID {
		return nil, ErrOwnDonation
	}

	claimed, err := s.Repo.Claim(id, userID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyClaimed
	}

	d.Status = models.DonationClaimed
	d.ClaimedBy = userID
	return d, nil
}

func (s *DefaultDonationService) ListByDonor(donorID string) ([]models.Donation, error) {
	return s.Repo.ListByDonor(donorID)
}
