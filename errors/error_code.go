package errors

// ErrorCode classifies application errors for logs and diagnostics.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_CONFIG
	ErrorCode_MODEL_UNAVAILABLE
	ErrorCode_CLASSIFICATION_FAILED
	ErrorCode_EXTERNAL_API_FAILED
	ErrorCode_INPUT_UNREADABLE
	ErrorCode_OUTPUT_WRITE_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:           "UNSPECIFIED",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_INVALID_CONFIG:        "INVALID_CONFIG",
	ErrorCode_MODEL_UNAVAILABLE:     "MODEL_UNAVAILABLE",
	ErrorCode_CLASSIFICATION_FAILED: "CLASSIFICATION_FAILED",
	ErrorCode_EXTERNAL_API_FAILED:   "EXTERNAL_API_FAILED",
	ErrorCode_INPUT_UNREADABLE:      "INPUT_UNREADABLE",
	ErrorCode_OUTPUT_WRITE_FAILED:   "OUTPUT_WRITE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNSPECIFIED"
}
