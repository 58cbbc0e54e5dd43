package errors

// Error message constants for the svelte-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile     = "failed to read file"
	ErrMsgFailedToFormatFile   = "failed to format file"
	ErrMsgFailedToWriteFile    = "failed to write file"
	ErrMsgFailedToLocateScript = "failed to locate script block"
	ErrMsgUnsupportedFileKind  = "unsupported file kind"
	ErrMsgIdempotencyViolation = "reformatting its own output changed it again; refusing to write"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"

	// VCS errors
	ErrMsgFailedToResolveRepoRoot = "failed to resolve repository root"
	ErrMsgFailedToQueryStatus     = "failed to query VCS status"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound          = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles            = "Found %d source files in directory: %s"
	InfoMsgNoChangedFiles              = "No changed source files to process"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
)
