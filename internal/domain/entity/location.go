package entity

import (
	"unicode/utf8"
)

const (
	// DefaultLatitude and DefaultLongitude are the city-center coordinate used when no location is known.
	DefaultLatitude  = 26.86957
	DefaultLongitude = 81.00935

	// CompactLabelLength is the longest label shown in compact contexts such as the header.
	CompactLabelLength = 28

	labelEllipsis = "..."
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// DefaultCoordinate returns the fallback coordinate.
func DefaultCoordinate() Coordinate {
	return Coordinate{Lat: DefaultLatitude, Long: DefaultLongitude}
}

// StoredLocation is the last confirmed delivery location of a client.
// It is always written as one record.
type StoredLocation struct {
	Lat   float64 `json:"lat"`
	Long  float64 `json:"long"`
	Label string  `json:"label,omitempty"`
}

// DefaultStoredLocation is returned when nothing has been confirmed yet.
func DefaultStoredLocation() StoredLocation {
	return StoredLocation{Lat: DefaultLatitude, Long: DefaultLongitude}
}

// Coordinate returns the position part of the location.
func (l StoredLocation) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Long: l.Long}
}

// ShortLabel returns the label truncated for compact display.
func (l StoredLocation) ShortLabel() string {
	return TruncateLabel(l.Label, CompactLabelLength)
}

// TruncateLabel cuts label to max runes and appends an ellipsis when it was longer.
func TruncateLabel(label string, max int) string {
	if max <= 0 || utf8.RuneCountInString(label) <= max {
		return label
	}

	runes := []rune(label)

	return string(runes[:max]) + labelEllipsis
}

// StructuredFormatting splits a place description into its main and secondary parts.
type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text,omitempty"`
}

// PlaceCandidate is one autocomplete suggestion.
type PlaceCandidate struct {
	PlaceID              string                `json:"placeId"`
	Description          string                `json:"description"`
	StructuredFormatting *StructuredFormatting `json:"structured_formatting,omitempty"`
}

// ResolvedPlace is a selected candidate turned into a concrete coordinate.
type ResolvedPlace struct {
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Address string  `json:"address"`
}

// ServiceabilityResult is the delivery backend's answer for a coordinate.
type ServiceabilityResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
