package dto

import "net/http"

// Transport-level error codes. Domain error codes come from
// shared.DomainError and are passed through unchanged.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks the required role
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodeValidation is used when request body validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Missing resources -> 404 Not Found
	ErrCodeNotFound:        http.StatusNotFound,
	"ORDER_ITEM_NOT_FOUND": http.StatusNotFound,

	// Conflicting state -> 409 Conflict
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONFLICT":             http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"ALREADY_EXPORTED":     http.StatusConflict,
	"ALREADY_FULFILLED":    http.StatusConflict,
	"TABLE_OCCUPIED":       http.StatusConflict,

	// Stock shortage -> 400, matching the legacy consume endpoints
	"INSUFFICIENT_STOCK": http.StatusBadRequest,
	"NO_STOCK_AVAILABLE": http.StatusBadRequest,

	// Business rule violations -> 400 Bad Request
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_STATE":          http.StatusBadRequest,
	"INVALID_STATUS":         http.StatusBadRequest,
	"INVALID_ITEM":           http.StatusBadRequest,
	"INVALID_ITEM_STATUS":    http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":   http.StatusBadRequest,
	"INVALID_CODE":           http.StatusBadRequest,
	"INVALID_QUANTITY":       http.StatusBadRequest,
	"INVALID_UNIT_COST":      http.StatusBadRequest,
	"INVALID_VALUE":          http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_PURCHASE":       http.StatusBadRequest,
	"INVALID_INVOICE_NUMBER": http.StatusBadRequest,
	"INVALID_PAYMENT":        http.StatusBadRequest,
	"INVALID_SUPPLIER":       http.StatusBadRequest,
	"INVALID_SUPPLIER_NAME":  http.StatusBadRequest,
	"INVALID_SUPPLIER_TYPE":  http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_SECTION_TITLE":  http.StatusBadRequest,
	"INVALID_TABLE_TITLE":    http.StatusBadRequest,
	"INVALID_MENU_TITLE":     http.StatusBadRequest,
	"INVALID_INGREDIENT":     http.StatusBadRequest,
	"INVALID_ORDER_NUMBER":   http.StatusBadRequest,
	"INVALID_ORDER_TYPE":     http.StatusBadRequest,
	"INVALID_ORDER_ITEM":     http.StatusBadRequest,
	"INVALID_MERGE":          http.StatusBadRequest,
	"EMPTY_PURCHASE":         http.StatusBadRequest,
	"EMPTY_ORDER":            http.StatusBadRequest,
	"EMPTY_CONSUMPTION":      http.StatusBadRequest,
	"OVERPAYMENT":            http.StatusBadRequest,
	"SUPPLIER_INACTIVE":      http.StatusBadRequest,
	"MISSING_LOCATION":       http.StatusBadRequest,
	"MISSING_TABLE":          http.StatusBadRequest,
	"MENU_ITEM_UNAVAILABLE":  http.StatusBadRequest,
	"ORDER_CLOSED":           http.StatusBadRequest,

	// Exhausted generators -> 500 Internal Server Error
	"CODE_GENERATION_EXHAUSTED":    http.StatusInternalServerError,
	"INVOICE_GENERATION_EXHAUSTED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
