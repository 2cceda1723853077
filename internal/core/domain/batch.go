package domain

// Upload is one file handed to batch processing.
type Upload struct {
	// Name is the filename; its suffix selects the format unless Format is set.
	Name string

	// Content is the raw file bytes.
	Content []byte

	// Format optionally overrides suffix detection.
	Format Format
}

// FileError records why a single file in a batch failed.
type FileError struct {
	// Name is the originating filename.
	Name string

	// Index is the position of the file in the supplied batch.
	Index int

	// Err is the processing error; match it with errors.Is.
	Err error
}

// Error implements the error interface.
func (e FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e FileError) Unwrap() error {
	return e.Err
}

// BatchReport lists the outcome of each file in a batch.
// Failures never prevent sibling files from being processed.
type BatchReport struct {
	// Succeeded holds records created, in supplied order.
	Succeeded []Record

	// Failed holds per-file errors, in supplied order.
	Failed []FileError
}

// Total returns the number of files attempted.
func (b *BatchReport) Total() int {
	return len(b.Succeeded) + len(b.Failed)
}

// HasFailures returns true if at least one file failed.
func (b *BatchReport) HasFailures() bool {
	return len(b.Failed) > 0
}
