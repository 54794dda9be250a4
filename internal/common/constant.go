package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// bearer credential on outbound requests.
const AccessTokenHeaderName = "access_token"
