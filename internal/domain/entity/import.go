package entity

// ImportError describes why a single record of a batch was not persisted.
// ExternalID is empty when the record did not carry a usable identifier; Index then
// identifies the record by its position in the batch.
type ImportError struct {
	Index      int
	ExternalID string
	Message    string
}

// ImportBatchResult is the transient outcome of one import batch.
// Processed always equals Inserted + Updated + Failed.
type ImportBatchResult struct {
	Processed int
	Inserted  int
	Updated   int
	Failed    int
	Errors    []ImportError
}

// RecordInserted counts a newly created listing.
func (r *ImportBatchResult) RecordInserted() {
	r.Processed++
	r.Inserted++
}

// RecordUpdated counts an existing listing that was overwritten.
func (r *ImportBatchResult) RecordUpdated() {
	r.Processed++
	r.Updated++
}

// RecordFailure counts a record that was rolled back and remembers why.
func (r *ImportBatchResult) RecordFailure(index int, externalID, message string) {
	r.Processed++
	r.Failed++
	r.Errors = append(r.Errors, ImportError{
		Index:      index,
		ExternalID: externalID,
		Message:    message,
	})
}
