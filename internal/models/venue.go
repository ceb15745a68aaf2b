package models

// VenueLocation - именованная точка проведения служения
type VenueLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearestVenueResult - результат поиска ближайшего зала.
// DistanceMeters округлено для отображения, IsWithin считается по неокругленному расстоянию.
type NearestVenueResult struct {
	VenueName      string `json:"venue_name"`
	DistanceMeters int    `json:"distance_meters"`
	IsWithin       bool   `json:"is_within"`
}
