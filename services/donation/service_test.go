package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pawhub/models"
)

type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) GetByID(id string) (*models.Donation, error) {
	args := m.Called(id)
	if d, ok := args.Get(0).(*models.Donation); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDonationRepo) ListByStatus(status string) ([]models.Donation, error) {
	args := m.Called(status)
	if ds, ok := args.Get(0).([]models.Donation); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDonationRepo) ListByDonor(donorID string) ([]models.Donation, error) {
	args := m.Called(donorID)
	if ds, ok := args.Get(0).([]models.Donation); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDonationRepo) Create(donation *models.Donation) error {
	return m.Called(donation).Error(0)
}

func (m *MockDonationRepo) Claim(id, userID string) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

func donationAt(id string, lat, lng float64) models.Donation {
	return models.Donation{
		ID:          id,
		DonorID:     "donor-" + id,
		FoodType:    "dry",
		QuantityKg:  5,
		LocationGeo: models.NewGeoPoint(lng, lat),
		Status:      models.DonationAvailable,
	}
}

func TestSearchNearbyFiltersByRadius(t *testing.T) {
	repo := new(MockDonationRepo)
	repo.On("ListByStatus", models.DonationAvailable).Return([]models.Donation{
		donationAt("at-origin", 0, 0),
		donationAt("one-degree-out", 1, 1),
	}, nil)

	svc := &DefaultDonationService{Repo: repo}

	results, err := svc.SearchNearby(0, 0, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "at-origin", results[0].ID)
	assert.Zero(t, results[0].DistanceKm)
}

func TestSearchNearbySortsNearestFirst(t *testing.T) {
	repo := new(MockDonationRepo)
	repo.On("ListByStatus", models.DonationAvailable).Return([]models.Donation{
		donationAt("far", 0.5, 0),
		donationAt("near", 0.1, 0),
		donationAt("mid", 0.3, 0),
	}, nil)

	svc := &DefaultDonationService{Repo: repo}

	results, err := svc.SearchNearby(0, 0, 100)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, "mid", results[1].ID)
	assert.Equal(t, "far", results[2].ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
}

func TestSearchNearbyEmptyInventory(t *testing.T) {
	repo := new(MockDonationRepo)
	repo.On("ListByStatus", models.DonationAvailable).Return([]models.Donation{}, nil)

	svc := &DefaultDonationService{Repo: repo}

	results, err := svc.SearchNearby(0, 0, 25)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClaimDonation(t *testing.T) {
	repo := new(MockDonationRepo)
	d := donationAt("d1", 0, 0)
	repo.On("GetByID", "d1").Return(&d, nil)
	repo.On("Claim", "d1", "user-9").Return(true, nil)

	svc := &DefaultDonationService{Repo: repo}

	claimed, err := svc.ClaimDonation("d1", "user-9")
	require.NoError(t, err)
	assert.Equal(t, models.DonationClaimed, claimed.Status)
	assert.Equal(t, "user-9", claimed.ClaimedBy)
}

func TestClaimDonationOwnListing(t *testing.T) {
	repo := new(MockDonationRepo)
	d := donationAt("d1", 0, 0)
	repo.On("GetByID", "d1").Return(&d, nil)

	svc := &DefaultDonationService{Repo: repo}

	_, err := svc.ClaimDonation("d1", d.DonorID)
	assert.ErrorIs(t, err, ErrOwnDonation)
	repo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
}

func TestClaimDonationLostRace(t *testing.T) {
	repo := new(MockDonationRepo)
	d := donationAt("d1", 0, 0)
	repo.On("GetByID", "d1").Return(&d, nil)
	// The conditional update matched nothing: another user claimed it first.
	repo.On("Claim", "d1", "user-9").Return(false, nil)

	svc := &DefaultDonationService{Repo: repo}

	_, err := svc.ClaimDonation("d1", "user-9")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestClaimDonationNotFound(t *testing.T) {
	repo := new(MockDonationRepo)
	repo.On("GetByID", "ghost").Return(nil, nil)

	svc := &DefaultDonationService{Repo: repo}

	_, err := svc.ClaimDonation("ghost", "user-9")
	assert.ErrorIs(t, err, ErrDonationNotFound)
}

func TestCreateDonationDefaults(t *testing.T) {
	repo := new(MockDonationRepo)
	repo.On("Create", mock.AnythingOfType("*models.Donation")).Return(nil)

	svc := &DefaultDonationService{Repo: repo}

	in := models.Donation{
		FoodType:   "wet",
		Brand:      "Purrfect",
		QuantityKg: 3,
		// Client-supplied status and claim fields are ignored.
		Status:    models.DonationClaimed,
		ClaimedBy: "sneaky",
	}
	created, err := svc.CreateDonation("donor-7", in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "donor-7", created.DonorID)
	assert.Equal(t, models.DonationAvailable, created.Status)
	assert.Empty(t, created.ClaimedBy)
	assert.False(t, created.CreatedAt.IsZero())
}
