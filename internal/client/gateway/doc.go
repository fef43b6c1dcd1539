// Package gateway is the single choke point for calls to the library backend.
//
// # Overview
//
// A Gateway sends immutable Request values and always resolves to a
// *Response; it never returns a Go error for a non-2xx status. Each call:
//  1. reads the persisted bearer token and attaches it as
//     "Authorization: Bearer <token>" (no header when no token is stored);
//  2. sends the request and normalizes the backend envelope
//     {data, message, error, statusCode};
//  3. on 401, unless the request is already marked Retried or the active
//     screen is login/register, calls the refresh endpoint once, persists the
//     new token and resends the request exactly once with Retried set.
//
// A failed refresh leaves the stored token untouched and the original 401
// response is returned to the caller, who decides whether to send the user
// back to login.
//
// # Progress
//
// Progress.Start and Progress.Done bracket every Send, including the nested
// refresh and retry, exactly once.
//
// # Concurrency
//
// A Gateway is safe for concurrent use. Concurrent requests that all receive a
// 401 each run their own refresh; the last token written wins. Pass
// WithCoalescedRefresh to share one in-flight refresh between them instead.
// The shared refresh ignores cancellation of the caller that started it and
// is bounded by its own 30s timeout; a canceled waiter gets its original 401.
package gateway
