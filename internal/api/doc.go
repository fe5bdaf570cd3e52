// Package api provides the REST client for the cashboard backend.
//
// Endpoint groups:
//   - games: join/create, players, live data, actions, end-game settlement
//   - user: profile, superuser check, lifetime stats, plot data
//   - debts: list, send, accept
//   - token: obtain and refresh JWT pairs
//
// Failures are reported as tagged variants: *ServerError carries the HTTP
// status and the backend's "detail" message when present, *NetworkError
// wraps transport failures. Callers match with errors.As.
package api
