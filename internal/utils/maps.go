package utils

import (
	"strconv"
)

// GoogleMapsURL opens the given coordinates in Google Maps.
func GoogleMapsURL(lat, lng float64) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64)
}
