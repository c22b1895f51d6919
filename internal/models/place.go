package models

import "time"

// Place is a resolved geocoding result for one normalized address.
// Entries are created on the first lookup of an address and never
// mutated afterwards.
type Place struct {
	Address    string    `json:"address"`
	Location   Location  `json:"location"`
	ResolvedAt time.Time `json:"resolved_at"`
}
