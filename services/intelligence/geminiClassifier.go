package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"receptionist/utils"

	"go.uber.org/zap"
)

const classifierPrompt = `You are the front desk of a small business. Classify the customer message into exactly ONE of these categories: %s.
Use "%s" when nothing else fits.

Message: %s

Respond with JSON only: {"label": "<category>"}`

// GeminiClassifier asks a generative model to pick a label.
type GeminiClassifier struct {
	gen    ContentGenerator
	labels []string
	logger *zap.Logger
}

func NewGeminiClassifier(gen ContentGenerator, labels []string, logger *zap.Logger) *GeminiClassifier {
	return &GeminiClassifier{gen: gen, labels: labels, logger: logger}
}

func (c *GeminiClassifier) Classify(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return LabelOther, nil
	}

	prompt := fmt.Sprintf(classifierPrompt, strings.Join(c.labels, ", "), LabelOther, text)
	out, err := c.gen.GenerateContent(ctx, prompt)
	if err != nil {
		utils.ClassifierRequests.WithLabelValues("gemini", "error").Inc()
		return "", fmt.Errorf("classify: %w", err)
	}
	utils.ClassifierRequests.WithLabelValues("gemini", "ok").Inc()

	label := c.parseLabel(out)
	c.logger.Debug("query classified", zap.String("label", label))
	return label, nil
}

// parseLabel extracts {"label": ...} from the model output. Anything outside
// the label space becomes LabelOther.
func (c *GeminiClassifier) parseLabel(out string) string {
	content := strings.TrimSpace(out)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}

	var result struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.logger.Warn("unparsable classifier output", zap.String("output", out))
		return LabelOther
	}

	// Return the configured spelling so templates keyed on it still match.
	label := strings.TrimSpace(result.Label)
	for _, l := range c.labels {
		if strings.EqualFold(l, label) {
			return l
		}
	}
	return LabelOther
}
