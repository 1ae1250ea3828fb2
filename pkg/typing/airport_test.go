package typing_test

import (
	"errors"
	"testing"

	"github.com/franciscopereira987/taisteala/pkg/typing"
)

func TestNewAirport(t *testing.T) {
	record := []string{"1", "Goroka Airport", "Goroka", "Papua New Guinea", "GKA", "AYGA",
		"-6.081689834590001", "145.391998291", "5282", "10", "U", "Pacific/Port_Moresby", "airport", "OurAirports"}

	airport := typing.NewAirport(record)
	if len(airport) != len(typing.AirportFields) {
		t.Fatalf("expected: %d fields, got: %d", len(typing.AirportFields), len(airport))
	}
	if airport.IATA() != "GKA" {
		t.Fatalf("expected: %s, got: %s", "GKA", airport.IATA())
	}
	if airport["tz_database_time_zone"] != "Pacific/Port_Moresby" {
		t.Fatalf("expected: %s, got: %s", "Pacific/Port_Moresby", airport["tz_database_time_zone"])
	}

	lat, lon, err := airport.Coordinates()
	if err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	if lat != -6.081689834590001 || lon != 145.391998291 {
		t.Fatalf("expected: (%f, %f), got: (%f, %f)", -6.081689834590001, 145.391998291, lat, lon)
	}
}

func TestAirportNullCode(t *testing.T) {
	airport := typing.Airport{typing.IataField: typing.NullField}
	if code := airport.IATA(); code != "" {
		t.Fatalf("expected empty code, got: %q", code)
	}
}

func TestAirportMalformedCoordinates(t *testing.T) {
	cases := []typing.Airport{
		{typing.IataField: "AAA", typing.LatitudeField: "abc", typing.LongitudeField: "1"},
		{typing.IataField: "AAA", typing.LatitudeField: "1", typing.LongitudeField: ""},
		{typing.IataField: "AAA", typing.LatitudeField: "1"},
	}
	for _, airport := range cases {
		if _, _, err := airport.Coordinates(); !errors.Is(err, typing.ErrMalformedRecord) {
			t.Fatalf("expected: %s, got: %v", typing.ErrMalformedRecord, err)
		}
	}
}
