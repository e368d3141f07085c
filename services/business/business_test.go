package business

import (
	"context"
	"errors"
	"testing"

	"receptionist/database"
	"receptionist/models"
	"receptionist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBusinessRepo struct {
	profile *models.BusinessProfile
	err     error
}

func (s *stubBusinessRepo) Get(context.Context) (*models.BusinessProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.profile == nil {
		return nil, database.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubBusinessRepo) Create(_ context.Context, p *models.BusinessProfile) error {
	s.profile = p
	return nil
}

func TestGetProfile(t *testing.T) {
	svc := NewBusinessService(&stubBusinessRepo{profile: &models.BusinessProfile{
		Name:     "TechFix Solutions",
		Services: []models.Service{{Name: "Laptop Repair", Price: 80}},
	}})

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TechFix Solutions", profile.Name)

	services, err := svc.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Laptop Repair", services[0].Name)
}

func TestGetServices_ProfileWithoutServices(t *testing.T) {
	svc := NewBusinessService(&stubBusinessRepo{profile: &models.BusinessProfile{Name: "Empty"}})

	services, err := svc.GetServices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestGetProfile_Missing(t *testing.T) {
	svc := NewBusinessService(&stubBusinessRepo{})

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = svc.GetServices(context.Background())
	assert.Equal(t, 404, utils.StatusFor(err))
}

func TestGetProfile_StoreDown(t *testing.T) {
	svc := NewBusinessService(&stubBusinessRepo{err: errors.New("no reachable servers")})

	_, err := svc.GetProfile(context.Background())
	assert.Equal(t, 500, utils.StatusFor(err))
}
