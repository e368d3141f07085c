package business

import (
	"context"
	"errors"

	"receptionist/database"
	businessRepo "receptionist/database/repository/business"
	"receptionist/models"
	"receptionist/utils"
)

var ErrBusinessNotFound = utils.NewNotFoundError("business_not_found", "Business data not found.")

// BusinessService exposes the read-only business profile.
type BusinessService interface {
	GetProfile(ctx context.Context) (*models.BusinessProfile, error)
	GetServices(ctx context.Context) ([]models.Service, error)
}

type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}

func NewBusinessService(repo businessRepo.BusinessRepository) *DefaultBusinessService {
	return &DefaultBusinessService{Repo: repo}
}

func (s *DefaultBusinessService) GetProfile(ctx context.Context) (*models.BusinessProfile, error) {
	profile, err := s.Repo.Get(ctx)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, utils.Internal("get business profile", err)
	}
	if profile.Services == nil {
		profile.Services = []models.Service{}
	}
	return profile, nil
}

// GetServices returns the profile's services; an empty list when the profile lists none.
func (s *DefaultBusinessService) GetServices(ctx context.Context) ([]models.Service, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return profile.Services, nil
}
