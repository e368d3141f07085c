package receptionist

import (
	"context"
	"strings"

	"receptionist/models"
	"receptionist/utils"
)

type keywordRule struct {
	name     string
	keywords []string
	respond  func(ctx context.Context) (*models.QueryResponse, error)
}

func (k keywordRule) matches(lowerQuery string) bool {
	for _, kw := range k.keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

func (r *DefaultResolver) respondServices(ctx context.Context) (*models.QueryResponse, error) {
	profile, err := r.profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil || len(profile.Services) == 0 {
		return &models.QueryResponse{Message: msgNoServices}, nil
	}
	return &models.QueryResponse{Message: msgServices, Services: profile.Services}, nil
}

func (r *DefaultResolver) respondSlots(ctx context.Context) (*models.QueryResponse, error) {
	slots, err := r.Slots.ListAvailable(ctx, "")
	if err != nil {
		return nil, utils.Internal("list slots", err)
	}
	if len(slots) == 0 {
		return &models.QueryResponse{Message: msgNoSlots}, nil
	}
	return &models.QueryResponse{Message: msgSlots, Slots: slots}, nil
}

func (r *DefaultResolver) respondHours(ctx context.Context) (*models.QueryResponse, error) {
	profile, err := r.profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil || (profile.OperatingHours == models.OperatingHours{}) {
		return &models.QueryResponse{Message: msgNoHours}, nil
	}
	hours := profile.OperatingHours
	return &models.QueryResponse{Message: msgHours, Hours: &hours}, nil
}
