package impl

import (
	"log/slog"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/infra/export"
	"menubuilder/internal/usecase"

	"github.com/pkg/errors"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(store repository.Store, logger *slog.Logger) usecase.ExportUsecase {
	return &exportService{store: store, logger: logger}
}

// ExportItems writes a consistent snapshot of the item collection to path.
// The items are already validated (nothing enters the store otherwise), so
// this is a pure read.
func (srv *exportService) ExportItems(path string) error {
	if path == "" {
		return errors.WithStack(domainerrors.ErrNoPathChosen)
	}

	items := srv.store.Items().All()

	groups := make(map[entity.EntityID]entity.ItemGroup)
	for _, group := range srv.store.ItemGroups().All() {
		groups[group.ID] = group
	}

	if err := export.ExportItems(path, items, groups); err != nil {
		return errors.Wrapf(err, "export items to %s", path)
	}

	srv.logger.Info("exported items", "path", path, "count", len(items))

	return nil
}
