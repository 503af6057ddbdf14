package services

import (
	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/models"
)

// ComputeViewport derives the initial map framing from the venues that carry
// a valid coordinate pair: the center is the arithmetic mean of latitudes
// and of longitudes, taken independently. With no located venue it falls
// back to the fixed regional center. This is a centroid, not a bounding-box
// fit; it breaks down for a large or sparse region.
func ComputeViewport(set []models.VenueWithSlots) models.Viewport {
	var sumLat, sumLng float64
	var n int
	for _, vws := range set {
		lat, lng, ok := vws.Venue.Coordinate()
		if !ok {
			continue
		}
		sumLat += lat
		sumLng += lng
		n++
	}

	if n == 0 {
		return models.Viewport{
			CenterLat: config.REGION_CENTER_LAT,
			CenterLng: config.REGION_CENTER_LNG,
			Zoom:      config.DEFAULT_MAP_ZOOM,
		}
	}

	return models.Viewport{
		CenterLat: sumLat / float64(n),
		CenterLng: sumLng / float64(n),
		Zoom:      config.DEFAULT_MAP_ZOOM,
	}
}
