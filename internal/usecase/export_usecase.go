package usecase

// ExportUsecase writes the item collection to a CSV file. The destination
// path arrives from the file-picker collaborator; an empty path means the
// operator dismissed the picker, which is distinguishable from I/O errors.
type ExportUsecase interface {
	// ExportItems writes all items (with item-group names resolved) to
	// path. Returns ErrNoPathChosen for an empty path.
	ExportItems(path string) error
}
