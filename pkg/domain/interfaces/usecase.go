package interfaces

import (
	"context"

	"github.com/m-mizutani/tagsync/pkg/domain/model"
)

// SyncUseCase defines the tag comparison and release creation workflow
type SyncUseCase interface {
	// Sync compares the latest tags of the target and local repositories
	// and creates a matching release in the local repository when the
	// target has moved ahead.
	Sync(ctx context.Context, req *model.SyncRequest) (*model.SyncResult, error)
}
