package ai

import (
	"context"
	"strings"
	"unicode"

	"receptionist/utils"
)

type keywordLabel struct {
	label    string
	keywords []string
}

// defaultKeywordLabels is checked in order; the first hit wins.
var defaultKeywordLabels = []keywordLabel{
	{label: "booking", keywords: []string{"book", "appointment", "schedule", "reserve"}},
	{label: "hours", keywords: []string{"hours", "open", "close", "when"}},
	{label: "pricing", keywords: []string{"price", "cost", "how much", "fee"}},
	{label: "services", keywords: []string{"service", "repair", "offer", "fix"}},
	{label: "contact", keywords: []string{"phone", "email", "contact", "call"}},
	{label: "greeting", keywords: []string{"hello", "hi", "hey", "good morning", "good evening"}},
}

// stemMinLen is the shortest single-word keyword that also matches longer
// words starting with it ("book" matches "booking", "hi" does not match "hill").
const stemMinLen = 4

// KeywordClassifier is an offline classifier for development and tests.
type KeywordClassifier struct {
	rules []keywordLabel
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: defaultKeywordLabels}
}

func (c *KeywordClassifier) Classify(_ context.Context, text string) (string, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// Padded so phrases only match on word boundaries.
	joined := " " + strings.Join(words, " ") + " "

	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if matchKeyword(words, joined, kw) {
				utils.ClassifierRequests.WithLabelValues("keyword", "ok").Inc()
				return r.label, nil
			}
		}
	}
	utils.ClassifierRequests.WithLabelValues("keyword", "ok").Inc()
	return LabelOther, nil
}

func matchKeyword(words []string, joined, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(joined, " "+kw+" ")
	}
	for _, w := range words {
		if w == kw || (len(kw) >= stemMinLen && strings.HasPrefix(w, kw)) {
			return true
		}
	}
	return false
}
