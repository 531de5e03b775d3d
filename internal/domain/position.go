package domain

import "time"

// Point is a WGS 84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlayerPosition is a player's last known location. At most one live
// position exists per UserName: a later check-in overwrites the previous
// one, and the store expires the record once LastUpdated is older than
// the configured position TTL.
type PlayerPosition struct {
	UserName    string
	DisplayName string
	Location    Point
	LastUpdated time.Time
}
