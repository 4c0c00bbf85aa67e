// Package impl contains the application-specific business rules
// implementations for the menu editor.
package impl

import (
	"log/slog"

	"menubuilder/internal/domain/entity"
	domainerrors "menubuilder/internal/domain/errors"
	"menubuilder/internal/domain/repository"
	"menubuilder/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface. It owns one
// generic editor per kind and coordinates the work that crosses kinds:
// reference resolution at save time and cascade cleanup at delete time.
type catalogService struct {
	store  repository.Store
	ops    map[entity.Kind]kindOps
	state  usecase.StateUsecase
	logger *slog.Logger

	items          *editor[entity.Item]
	itemGroups     *editor[entity.ItemGroup]
	priceLevels    *editor[entity.PriceLevel]
	productClasses *editor[entity.ProductClass]
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	store repository.Store,
	state usecase.StateUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	srv := &catalogService{
		store:  store,
		state:  state,
		logger: logger,

		items:          newEditor(entity.ItemDescriptor, store.Items()),
		itemGroups:     newEditor(entity.ItemGroupDescriptor, store.ItemGroups()),
		priceLevels:    newEditor(entity.PriceLevelDescriptor, store.PriceLevels()),
		productClasses: newEditor(entity.ProductClassDescriptor, store.ProductClasses()),
	}

	srv.ops = map[entity.Kind]kindOps{
		entity.KindItem:            srv.items,
		entity.KindItemGroup:       srv.itemGroups,
		entity.KindPriceLevel:      srv.priceLevels,
		entity.KindProductClass:    srv.productClasses,
		entity.KindTaxGroup:        newEditor(entity.TaxGroupDescriptor, store.TaxGroups()),
		entity.KindSecurityLevel:   newEditor(entity.SecurityLevelDescriptor, store.SecurityLevels()),
		entity.KindRevenueCategory: newEditor(entity.RevenueCategoryDescriptor, store.RevenueCategories()),
		entity.KindReportCategory:  newEditor(entity.ReportCategoryDescriptor, store.ReportCategories()),
		entity.KindChoiceGroup:     newEditor(entity.ChoiceGroupDescriptor, store.ChoiceGroups()),
		entity.KindPrinterLogical:  newEditor(entity.PrinterLogicalDescriptor, store.PrinterLogicals()),
	}

	return srv
}

func (srv *catalogService) opsFor(kind entity.Kind) (kindOps, error) {
	ops, ok := srv.ops[kind]
	if !ok {
		return nil, errors.Errorf("unknown kind: %s", kind)
	}

	return ops, nil
}

func (srv *catalogService) Kinds() []entity.Kind {
	return entity.Kinds()
}

func (srv *catalogService) List(kind entity.Kind) ([]usecase.RecordView, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return nil, err
	}

	return ops.list(), nil
}

func (srv *catalogService) Show(kind entity.Kind, id entity.EntityID) (usecase.RecordView, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return usecase.RecordView{}, err
	}

	return ops.show(id)
}

func (srv *catalogService) CreateNew(kind entity.Kind) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	srv.logger.Debug("creating draft", "kind", kind)

	return ops.createNew()
}

func (srv *catalogService) StartEdit(kind entity.Kind, id entity.EntityID) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	srv.logger.Debug("starting edit", "kind", kind, "id", id)

	return ops.startEdit(id)
}

func (srv *catalogService) Draft(kind entity.Kind) (usecase.RecordView, bool, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return usecase.RecordView{}, false, err
	}

	view, active := ops.draftView()

	return view, active, nil
}

func (srv *catalogService) SetDraftName(kind entity.Kind, name string) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.setDraftName(name)
}

func (srv *catalogService) Fields(kind entity.Kind) ([]string, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return nil, err
	}

	return ops.fieldNames(), nil
}

func (srv *catalogService) SetDraftField(kind entity.Kind, field, raw string) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.setDraftField(field, raw)
}

func (srv *catalogService) SetDraftID(kind entity.Kind, raw string) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.setDraftID(raw)
}

// resolve backs the validation engine's reference checks with the store.
func (srv *catalogService) resolve(kind entity.Kind, id entity.EntityID) bool {
	return srv.store.Has(kind, id)
}

func (srv *catalogService) Save(kind entity.Kind) (entity.EntityID, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return 0, err
	}

	id, err := ops.save(srv.resolve)
	if err != nil {
		return 0, errors.Wrapf(err, "save %s", kind)
	}

	srv.logger.Info("saved record", "kind", kind, "id", id)
	srv.autoSave()

	return id, nil
}

func (srv *catalogService) Cancel(kind entity.Kind) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.cancel()
}

func (srv *catalogService) DraftError(kind entity.Kind) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.draftError()
}

func (srv *catalogService) Copy(kind entity.Kind, id entity.EntityID) (entity.EntityID, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return 0, err
	}

	newID, err := ops.copyRecord(id)
	if err != nil {
		return 0, errors.Wrapf(err, "copy %s %d", kind, id)
	}

	srv.logger.Info("copied record", "kind", kind, "from", id, "to", newID)
	srv.autoSave()

	return newID, nil
}

func (srv *catalogService) Select(kind entity.Kind, id entity.EntityID) error {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return err
	}

	return ops.selectRecord(id)
}

// PlanDelete walks every collection's reference table to report which
// records still point at the candidate.
func (srv *catalogService) PlanDelete(kind entity.Kind, id entity.EntityID) (usecase.DeletionPlan, error) {
	ops, err := srv.opsFor(kind)
	if err != nil {
		return usecase.DeletionPlan{}, err
	}
	if !ops.exists(id) {
		return usecase.DeletionPlan{}, errors.Wrapf(domainerrors.ErrNotFound, "%s %d", kind, id)
	}

	plan := usecase.DeletionPlan{Kind: kind, ID: id}
	for _, other := range entity.Kinds() {
		affected := srv.ops[other].affectedBy(kind, id)
		if len(affected) > 0 {
			plan.Affected = append(plan.Affected, usecase.Affected{Kind: other, IDs: affected})
		}
	}

	return plan, nil
}

// ConfirmDelete executes a confirmed deletion: cascade reference cleanup
// first, then removal, then clearing stale selection/draft state. A plan
// whose record vanished in the meantime is a no-op, not an error.
func (srv *catalogService) ConfirmDelete(plan usecase.DeletionPlan) error {
	ops, err := srv.opsFor(plan.Kind)
	if err != nil {
		return err
	}

	if !ops.exists(plan.ID) {
		srv.logger.Debug("delete of missing record ignored", "kind", plan.Kind, "id", plan.ID)

		return nil
	}

	for _, other := range entity.Kinds() {
		changed := srv.ops[other].stripRefsTo(plan.Kind, plan.ID)
		if len(changed) > 0 {
			srv.logger.Debug("stripped references",
				"deleted", plan.Kind, "id", plan.ID,
				"kind", other, "records", len(changed))
		}
	}

	ops.removeRecord(plan.ID)
	ops.clearAfterDelete(plan.ID)

	srv.logger.Info("deleted record", "kind", plan.Kind, "id", plan.ID)
	srv.autoSave()

	return nil
}

func (srv *catalogService) Audit() []usecase.Violation {
	var violations []usecase.Violation
	for _, kind := range entity.Kinds() {
		violations = append(violations, srv.ops[kind].audit(srv.resolve)...)
	}

	return violations
}

func (srv *catalogService) Stats() map[entity.Kind]int {
	stats := make(map[entity.Kind]int, len(srv.ops))
	for kind, ops := range srv.ops {
		stats[kind] = ops.count()
	}

	return stats
}

// autoSave persists after a successful mutation when the settings ask for
// it. The mutation has already been applied; a persistence failure is
// surfaced in the log and the error message, never rolled back.
func (srv *catalogService) autoSave() {
	if srv.state == nil {
		return
	}
	if err := srv.state.AutoSave(); err != nil {
		srv.logger.Error("auto-save failed", "error", err)
	}
}
