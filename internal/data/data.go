package data

import (
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/infra/openai"
	"github.com/flowstate-live/flowstate/internal/infra/youtube"
)

// Repositories contains all repositories
type Repositories struct {
	ChatSource repo.ChatSourceRepo
	Completion repo.CompletionRepo // nil when no completion service is configured
	Archive    repo.ArchiveRepo    // nil when the archive is disabled
}

// NewRepositories creates all repositories.
// An empty archiveDBPath disables the archive.
func NewRepositories(
	youtubeClient *youtube.Client,
	completionClient *openai.Client,
	archiveDBPath string,
) (*Repositories, error) {
	repos := &Repositories{
		Completion: NewCompletionRepo(completionClient),
	}
	if youtubeClient != nil {
		repos.ChatSource = NewYouTubeRepo(youtubeClient)
	}

	if archiveDBPath != "" {
		archive, err := NewArchiveRepo(archiveDBPath)
		if err != nil {
			return nil, err
		}
		repos.Archive = archive
	}

	return repos, nil
}

// Close releases repository resources
func (r *Repositories) Close() error {
	if r.Archive != nil {
		return r.Archive.Close()
	}
	return nil
}
