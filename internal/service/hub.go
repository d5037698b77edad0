package service

import (
	"github.com/flowstate-live/flowstate/internal/biz"
	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// HubConfig is everything needed to assemble the live classification service
type HubConfig struct {
	Session domain.SessionConfig
	Spam    usecase.SpamConfig
	Prompts usecase.PromptConfig
}

// Hub wires the registry, the broadcaster and the per-session pipelines together
type Hub struct {
	Registry    *Registry
	Broadcaster *Broadcaster

	deps PipelineDeps
}

// NewHub creates a hub. completion and archive may be nil, which disables
// AI enrichment and archiving respectively.
func NewHub(source repo.ChatSourceRepo, completion repo.CompletionRepo, archive repo.ArchiveRepo, cfg HubConfig) *Hub {
	cfg.Session = cfg.Session.WithDefaults()
	h := &Hub{}
	h.Registry = NewRegistry(h.newPipeline)
	h.Broadcaster = NewBroadcaster(h.Registry, DefaultSendTimeout)
	uc := biz.NewUsecases(completion, cfg.Spam, cfg.Prompts, cfg.Session.VibeBatchSize)
	h.deps = PipelineDeps{
		Source:      source,
		Classifier:  uc.Classifier,
		Escalator:   uc.Escalator,
		Vibe:        uc.Vibe,
		Pulse:       uc.Pulse,
		Archive:     archive,
		Broadcaster: h.Broadcaster,
		Gate:        h.Registry,
		Config:      cfg.Session,
	}
	return h
}

func (h *Hub) newPipeline(sessionID string, token uint64) Runner {
	return NewPipeline(sessionID, token, h.deps)
}
