package biz

import (
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// Usecases contains all usecases
type Usecases struct {
	Classifier *usecase.ClassifierUsecase
	Escalator  *usecase.SpamEscalator
	Vibe       *usecase.VibeClassifier
	Pulse      *usecase.PulseSummarizer
}

// NewUsecases builds the classification usecases. A nil completion repo
// leaves only the lexical classifiers and spam heuristics active.
func NewUsecases(completion repo.CompletionRepo, spam usecase.SpamConfig, prompts usecase.PromptConfig, vibeBatchSize int) *Usecases {
	return &Usecases{
		Classifier: usecase.NewClassifierUsecase(usecase.NewSpamDetector(spam)),
		Escalator:  usecase.NewSpamEscalator(completion, prompts),
		Vibe:       usecase.NewVibeClassifier(completion, prompts, vibeBatchSize),
		Pulse:      usecase.NewPulseSummarizer(completion, prompts),
	}
}
