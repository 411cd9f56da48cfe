package usecase

import (
	"outlet-assistant/internal/outlet"
	"outlet-assistant/internal/outlet/repository"
	pkgLog "outlet-assistant/pkg/log"
	"outlet-assistant/pkg/openai"
)

type implUseCase struct {
	l       pkgLog.Logger
	catalog *outlet.Catalog
	db      repository.Database
	llm     openai.IOpenAI
}

// New creates a new outlet UseCase instance.
func New(
	l pkgLog.Logger,
	catalog *outlet.Catalog,
	db repository.Database,
	llm openai.IOpenAI,
) *implUseCase {
	return &implUseCase{
		l:       l,
		catalog: catalog,
		db:      db,
		llm:     llm,
	}
}
