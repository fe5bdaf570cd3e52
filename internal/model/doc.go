// Package model defines shared data types used across the cashboard client.
//
// Conventions:
//   - Money: integer cents (model.Cents), so balance comparisons are exact
//   - Timestamps: time.Time, parsed from the backend's ISO 8601 strings
//   - Player names: unique within a game, assigned by the backend
package model
