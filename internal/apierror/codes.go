package apierror

// Error type URIs following the urn:happify:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:happify:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:happify:error:not_found"

	// TypeUnauthorized indicates a missing or invalid session (401)
	TypeUnauthorized = "urn:happify:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:happify:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:happify:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleBadRequest   = "Bad Request"
)
