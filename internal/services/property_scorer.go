package services

import "context"

// PropertyScorer sends a scoring prompt to a generative model and returns
// the raw reply text. Parsing is the caller's job.
type PropertyScorer interface {
	Provider() string
	Model() string
	// Configured is false when no credential was supplied.
	Configured() bool
	Score(ctx context.Context, system, prompt string) (string, error)
}
