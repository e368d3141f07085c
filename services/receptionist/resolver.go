package receptionist

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"receptionist/database"
	businessRepo "receptionist/database/repository/business"
	calendarRepo "receptionist/database/repository/calendar"
	templateRepo "receptionist/database/repository/template"
	"receptionist/models"
	ai "receptionist/services/intelligence"
	"receptionist/utils"

	"go.uber.org/zap"
)

const (
	msgServices        = "Here are our available services:"
	msgNoServices      = "No services found."
	msgSlots           = "Here are the available time slots:"
	msgNoSlots         = "No available time slots."
	msgHours           = "Our operating hours are:"
	msgNoHours         = "Operating hours not available."
	msgNotUnderstood   = "Sorry, I couldn't understand your request. Please ask about services, scheduling, or operating hours."
	defaultUserName    = "Guest"
	defaultServiceName = "our services"
	defaultBusiness    = "our business"
)

// Resolver answers free-text customer queries.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*models.QueryResponse, error)
}

// DefaultResolver classifies the query, prefers an admin template for the
// label and otherwise falls back to the keyword rules.
type DefaultResolver struct {
	Classifier ai.Classifier
	Templates  templateRepo.TemplateRepository
	Business   businessRepo.BusinessRepository
	Slots      calendarRepo.SlotRepository
	QueryLog   QueryLogger
	Logger     *zap.Logger
	Now        func() time.Time

	rules []keywordRule
}

func NewResolver(
	classifier ai.Classifier,
	templates templateRepo.TemplateRepository,
	business businessRepo.BusinessRepository,
	slots calendarRepo.SlotRepository,
	queryLog QueryLogger,
	logger *zap.Logger,
) *DefaultResolver {
	r := &DefaultResolver{
		Classifier: classifier,
		Templates:  templates,
		Business:   business,
		Slots:      slots,
		QueryLog:   queryLog,
		Logger:     logger.Named("receptionist"),
		Now:        time.Now,
	}
	r.rules = []keywordRule{
		{name: "services", keywords: []string{"service"}, respond: r.respondServices},
		{name: "slots", keywords: []string{"book", "appointment"}, respond: r.respondSlots},
		{name: "hours", keywords: []string{"hours", "open"}, respond: r.respondHours},
	}
	return r
}

func (r *DefaultResolver) Resolve(ctx context.Context, query string) (*models.QueryResponse, error) {
	label, err := r.Classifier.Classify(ctx, query)
	if err != nil {
		return nil, utils.Internal("classify query", err)
	}

	resp, path, err := r.answer(ctx, query, label)
	if err != nil {
		return nil, err
	}
	utils.QueriesResolved.WithLabelValues(path).Inc()
	r.Logger.Debug("query resolved", zap.String("label", label), zap.String("path", path))

	r.QueryLog.Log(models.QueryLogEntry{
		Query:     query,
		QueryType: label,
		Response:  *resp,
		Timestamp: r.Now().UTC(),
	})
	return resp, nil
}

func (r *DefaultResolver) answer(ctx context.Context, query, label string) (*models.QueryResponse, string, error) {
	tpl, err := r.Templates.GetByQueryType(ctx, label)
	switch {
	case err == nil:
		msg, err := r.fillTemplate(ctx, tpl.Template)
		if err != nil {
			return nil, "", err
		}
		return &models.QueryResponse{Message: msg}, "template", nil
	case !errors.Is(err, database.ErrNotFound):
		return nil, "", utils.Internal("load template", err)
	}

	lower := strings.ToLower(query)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			resp, err := rule.respond(ctx)
			return resp, rule.name, err
		}
	}
	return &models.QueryResponse{Message: msgNotUnderstood}, "fallback", nil
}

var placeholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// fillTemplate substitutes {user_name}, {service_name} and {business_name}
// regardless of case. Other placeholders are left as written.
func (r *DefaultResolver) fillTemplate(ctx context.Context, text string) (string, error) {
	if !placeholderPattern.MatchString(text) {
		return text, nil
	}

	profile, err := r.profile(ctx)
	if err != nil {
		return "", err
	}
	values := map[string]string{
		"user_name":     defaultUserName,
		"service_name":  defaultServiceName,
		"business_name": defaultBusiness,
	}
	if name := profile.FirstServiceName(); name != "" {
		values["service_name"] = name
	}
	if profile != nil && profile.Name != "" {
		values["business_name"] = profile.Name
	}

	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		key := strings.ToLower(placeholderPattern.FindStringSubmatch(m)[1])
		if v, ok := values[key]; ok {
			return v
		}
		return m
	}), nil
}

// profile returns nil, nil when no profile was stored.
func (r *DefaultResolver) profile(ctx context.Context) (*models.BusinessProfile, error) {
	p, err := r.Business.Get(ctx)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, utils.Internal("load business profile", err)
	}
	return p, nil
}
