// Package models defines persisted types shared across shade.
package models

import "time"

// ThemeRecord is a stored theme seed pair. Anchor is empty when the theme
// has no accent color.
type ThemeRecord struct {
	ID         string
	Name       string
	Background string
	Anchor     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
