package usecase

import (
	"outlet-assistant/internal/product/repository"
	pkgLog "outlet-assistant/pkg/log"
	"outlet-assistant/pkg/openai"
)

type implUseCase struct {
	l          pkgLog.Logger
	vectorRepo repository.VectorRepository
	llm        openai.IOpenAI
}

// New creates a new product UseCase instance.
func New(
	l pkgLog.Logger,
	vectorRepo repository.VectorRepository,
	llm openai.IOpenAI,
) *implUseCase {
	return &implUseCase{
		l:          l,
		vectorRepo: vectorRepo,
		llm:        llm,
	}
}
