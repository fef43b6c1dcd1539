// Package common contains shared constants and sentinel errors used across
// libadmin components.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName correlates a request with its single retry in backend logs.
const RequestIDHeaderName = "X-Request-ID"

// AccessTokenKey is the fixed key the bearer token is persisted under.
const AccessTokenKey = "accessToken"

// APIPrefix is the path prefix shared by every backend endpoint.
const APIPrefix = "/api/v1"
