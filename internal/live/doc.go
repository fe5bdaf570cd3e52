// Package live drives the game view: a poll loop refreshing the table
// snapshot and a clock loop advancing the displayed game time.
//
// Contracts:
//   - Snapshots replace the previous one wholesale; there is no merging
//   - Fetch failures keep the previous snapshot on display
//   - Both loops stop and are joined on Stop; nothing ticks after teardown
//   - Responses landing after teardown are dropped
//
// Stream is the opt-in push-based alternative to polling, delivering the
// same wholesale-replace snapshots over a WebSocket subscription.
package live
