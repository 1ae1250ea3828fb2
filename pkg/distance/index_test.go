package distance_test

import (
	"errors"
	"testing"

	"github.com/franciscopereira987/taisteala/pkg/distance"
	"github.com/franciscopereira987/taisteala/pkg/typing"
)

func airport(code, lat, lon string) typing.Airport {
	return typing.Airport{
		typing.IataField:      code,
		typing.LatitudeField:  lat,
		typing.LongitudeField: lon,
	}
}

func TestBuildIndexSkipsMissingCodes(t *testing.T) {
	airports := []typing.Airport{
		airport("GKA", "-6.081689", "145.391881"),
		airport("", "1", "1"),
		airport(typing.NullField, "2", "2"),
		{typing.LatitudeField: "3", typing.LongitudeField: "3"},
	}

	index := distance.BuildIndex(airports)
	if len(index) != 1 {
		t.Fatalf("expected: %d entries, got: %d", 1, len(index))
	}
	if _, ok := index["GKA"]; !ok {
		t.Fatal("GKA should be indexed")
	}
	if _, ok := index[""]; ok {
		t.Fatal("empty code should not be indexed")
	}
	if _, err := index.Lookup(typing.NullField); !errors.Is(err, distance.ErrNotFound) {
		t.Fatalf("expected: %s, got: %v", distance.ErrNotFound, err)
	}
}

func TestBuildIndexLastDuplicateWins(t *testing.T) {
	first := airport("MAG", "1", "1")
	last := airport("MAG", "-5.207083", "145.7887")

	index := distance.BuildIndex([]typing.Airport{first, last})
	if len(index) != 1 {
		t.Fatalf("expected: %d entries, got: %d", 1, len(index))
	}
	if got := index["MAG"][typing.LatitudeField]; got != "-5.207083" {
		t.Fatalf("expected: %s, got: %s", "-5.207083", got)
	}
}

func TestIndexLookup(t *testing.T) {
	index := distance.BuildIndex([]typing.Airport{airport("HGU", "-5.826789", "144.295861")})

	if _, err := index.Lookup("HGU"); err != nil {
		t.Fatalf("failed with error: %s", err)
	}
	_, err := index.Lookup("XXX")
	if !errors.Is(err, distance.ErrNotFound) {
		t.Fatalf("expected: %s, got: %v", distance.ErrNotFound, err)
	}
	if err.Error() != "unknown IATA code: XXX" {
		t.Fatalf("expected the code in the error, got: %s", err)
	}
}
