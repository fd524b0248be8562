package dto

const (
	// DefaultSuccessMessage is used when a caller has nothing more specific to say.
	DefaultSuccessMessage = "Operación exitosa"
	// ValidationErrorMessage heads every validation-error envelope.
	ValidationErrorMessage = "Error de validación"
)

// APIResponse is the envelope wrapping every handler response.
// Success responses never carry Errors and error responses never carry Data.
type APIResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Success wraps data in a success envelope.
func Success[T any](data T, message string) APIResponse[T] {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

// Error builds an error envelope. Errors is never nil.
func Error[T any](message string, errors ...string) APIResponse[T] {
	if errors == nil {
		errors = []string{}
	}
	return APIResponse[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// ValidationError builds the envelope for a list of failed validation rules.
func ValidationError[T any](errors []string) APIResponse[T] {
	return Error[T](ValidationErrorMessage, errors...)
}
