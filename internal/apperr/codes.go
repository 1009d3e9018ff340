package apperr

type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeInvalidInput      Code = "INVALID_INPUT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeDuplicateUsername Code = "DUPLICATE_USERNAME"
	CodeAccessDenied      Code = "ACCESS_DENIED"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodeStorageFailure    Code = "STORAGE_FAILURE"
)
