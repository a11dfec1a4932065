// Package constants holds values shared across layers.
package constants

const (
	// HeaderAuthorization carries the bearer session token.
	HeaderAuthorization = "Authorization"

	// BearerScheme prefixes the token in the Authorization header.
	BearerScheme = "Bearer"

	// ContextKeyUser is the echo.Context key holding the authenticated *entity.PublicUser.
	ContextKeyUser = "user"

	// ContextKeyUserID is the echo.Context key holding the authenticated user id.
	ContextKeyUserID = "userID"
)

// Multipart form field names.
const (
	FormFieldImage       = "image"
	FormFieldUpperImage  = "upperImage"
	FormFieldLowerImage  = "lowerImage"
	FormFieldName        = "name"
	FormFieldDescription = "description"
)

// Orphan reasons reported with orphaned image events.
const (
	OrphanReasonLowerUploadFailed = "lower_upload_failed"
	OrphanReasonRowWriteFailed    = "row_write_failed"
	OrphanReasonReplaced          = "replaced"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes.
const (
	AttributeRequestID = "request_id"
	AttributeBucket    = "bucket"
	AttributeReason    = "reason"
)
