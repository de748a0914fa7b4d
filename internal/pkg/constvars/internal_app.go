package constvars

type ContextKey string

const (
	ContextUserKey      ContextKey = "user"
	ContextRequestIDKey ContextKey = "request_id"
)

const (
	MongoCollectionUsers    = "users"
	MongoCollectionContacts = "contacts"
)

// Subscription tiers a user account can hold.
const (
	SubscriptionStarter  = "starter"
	SubscriptionPro      = "pro"
	SubscriptionBusiness = "business"
)

const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

const (
	AvatarWidthPx            = 250
	AvatarGravatarURLFormat  = "https://www.gravatar.com/avatar/%s?d=identicon"
	VerificationLinkFormat   = "%s/api/users/verify/%s"
	ResendVerifyLimiterGroup = "RESEND-VERIFY"
)
