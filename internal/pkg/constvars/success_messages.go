package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	UserCreatedSuccess  = "user created successfully"
	GetCurrentSuccess   = "get current user successfully"
	AvatarUpdateSuccess = "avatar updated successfully"

	// Auth messages
	LoginSuccess              = "successfully login"
	VerificationSuccess       = "Verification successful"
	VerificationEmailResent   = "Verification email sent"
	VerificationEmailLimitMsg = "verification email dispatched"

	// Contact messages
	ContactCreatedSuccess = "contact created successfully"
	ContactUpdatedSuccess = "contact updated successfully"
	ContactDeletedMessage = "contact deleted"
	GetContactsSuccess    = "get contacts successfully"
	GetContactSuccess     = "get contact successfully"
)
