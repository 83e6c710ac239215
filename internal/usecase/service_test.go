package usecase

import (
	"context"
	"testing"

	"dootrec/internal/data/fixture"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/response"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return repository.NewRepository(fixture.Default(), zap.NewNop())
}

func viewerCtx(id string) context.Context {
	return utils.SetViewerContext(context.Background(), id)
}

func reviewIDs(reviews []response.ReviewResponse) []string {
	ids := make([]string, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}
	return ids
}
