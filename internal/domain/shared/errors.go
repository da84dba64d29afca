package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidQuantity     = NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
)

// ConfigurationError is a unit-of-work level error: the upload cannot be
// processed at all because the column mapping setup is incomplete. It aborts
// the whole batch, unlike row-level validation problems.
type ConfigurationError struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return e.Message
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}
