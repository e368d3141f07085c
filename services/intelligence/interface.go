package ai

import "context"

// Classifier maps free text to one label of a fixed label space.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// LabelOther is returned when no label fits.
const LabelOther = "other"

// ContentGenerator is the slice of a generative model the classifier needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
