package types

const (
	HeaderLandlord      = "X-Landlord-ID"
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"
)
