package domain

// Immutable geographic coordinates (latitude, longitude) in WGS84 degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lat, lng] for map-layer compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lng} }
