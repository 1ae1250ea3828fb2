package typing

import (
	"errors"
	"fmt"
	"strconv"
)

// OpenFlights marks missing values with this literal.
const NullField = `\N`

const (
	IataField      = "iata"
	LatitudeField  = "latitude"
	LongitudeField = "longitude"
)

var AirportFields = []string{
	"airport_id",
	"name",
	"city",
	"country",
	IataField,
	"icao",
	LatitudeField,
	LongitudeField,
	"altitude",
	"timezone",
	"dst",
	"tz_database_time_zone",
	"type",
	"source",
}

var ErrMalformedRecord = errors.New("malformed airport record")

// Airport is a raw dataset row keyed by field name. Values are kept as read.
type Airport map[string]string

func NewAirport(record []string) Airport {
	airport := make(Airport, len(AirportFields))
	for i, field := range AirportFields {
		if i >= len(record) {
			break
		}
		airport[field] = record[i]
	}
	return airport
}

func (a Airport) IATA() string {
	code := a[IataField]
	if code == NullField {
		return ""
	}
	return code
}

func (a Airport) Coordinates() (lat float64, lon float64, err error) {
	lat, err = a.parseField(LatitudeField)
	if err == nil {
		lon, err = a.parseField(LongitudeField)
	}
	return lat, lon, err
}

func (a Airport) parseField(field string) (float64, error) {
	raw, ok := a[field]
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing %s", ErrMalformedRecord, a.IATA(), field)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s: %w", ErrMalformedRecord, a.IATA(), field, err)
	}
	return value, nil
}
