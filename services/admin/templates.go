package admin

import (
	"context"
	"errors"
	"strings"

	"receptionist/database"
	"receptionist/models"
	"receptionist/utils"

	"go.uber.org/zap"
)

var (
	ErrTemplateInvalid  = utils.NewValidationError("invalid_template", "query_type and custom_response_template are required.")
	ErrTemplateNotFound = utils.NewNotFoundError("template_not_found", "No custom response found for this query type.")
)

// SaveTemplate stores tpl, replacing any template already kept for its label.
// Placeholders are not checked; unknown ones are left as written at answer time.
func (s *DefaultTemplateService) SaveTemplate(ctx context.Context, tpl models.CustomResponseTemplate) error {
	tpl.QueryType = strings.TrimSpace(tpl.QueryType)
	if tpl.QueryType == "" || strings.TrimSpace(tpl.Template) == "" {
		return ErrTemplateInvalid
	}
	tpl.UpdatedAt = s.Now().UTC()

	if err := s.Repo.Upsert(ctx, &tpl); err != nil {
		return utils.Internal("save template", err)
	}
	s.Logger.Info("custom response saved", zap.String("query_type", tpl.QueryType))
	return nil
}

func (s *DefaultTemplateService) GetTemplate(ctx context.Context, queryType string) (*models.CustomResponseTemplate, error) {
	tpl, err := s.Repo.GetByQueryType(ctx, queryType)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, utils.Internal("get template", err)
	}
	return tpl, nil
}

func (s *DefaultTemplateService) ListTemplates(ctx context.Context) ([]models.CustomResponseTemplate, error) {
	tpls, err := s.Repo.List(ctx)
	if err != nil {
		return nil, utils.Internal("list templates", err)
	}
	if tpls == nil {
		tpls = []models.CustomResponseTemplate{}
	}
	return tpls, nil
}
