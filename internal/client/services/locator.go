// Package services contains application services for the AgroVest client:
// geolocation, weather lookups, and crop-disease analysis.
package services

import (
	"context"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/common"
)

// Locator resolves the device position used for weather lookups.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// StaticLocator serves a fixed position from configuration. It stands in for
// the permission-gated device geolocation a mobile client would use.
type StaticLocator struct {
	coords models.Coordinates
}

func NewStaticLocator(lat, lon float64) *StaticLocator {
	return &StaticLocator{coords: models.Coordinates{Latitude: lat, Longitude: lon}}
}

// Locate returns the configured coordinates. The zero pair means no location
// was configured and yields common.ErrLocationUnavailable, the equivalent of
// a denied location permission.
func (l *StaticLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if l.coords.Latitude == 0 && l.coords.Longitude == 0 {
		return models.Coordinates{}, common.ErrLocationUnavailable
	}
	return l.coords, nil
}
