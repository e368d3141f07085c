package admin

import (
	"context"
	"time"

	templateRepo "receptionist/database/repository/template"
	"receptionist/models"

	"go.uber.org/zap"
)

// TemplateService manages the custom answers keyed by classifier label.
type TemplateService interface {
	SaveTemplate(ctx context.Context, tpl models.CustomResponseTemplate) error
	GetTemplate(ctx context.Context, queryType string) (*models.CustomResponseTemplate, error)
	ListTemplates(ctx context.Context) ([]models.CustomResponseTemplate, error)
}

// DefaultTemplateService is the production implementation.
type DefaultTemplateService struct {
	Repo   templateRepo.TemplateRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func NewTemplateService(repo templateRepo.TemplateRepository, logger *zap.Logger) *DefaultTemplateService {
	return &DefaultTemplateService{Repo: repo, Logger: logger.Named("admin"), Now: time.Now}
}
