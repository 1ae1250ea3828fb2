package distance

import (
	"errors"
	"strings"

	"github.com/franciscopereira987/taisteala/pkg/typing"
)

const JourneySeparator = "-"

var ErrInvalidInput = errors.New("journey must include at least two airports")

type Leg struct {
	From     string
	To       string
	Distance float64
}

type Journey struct {
	Codes []string
	Legs  []Leg
	Total float64
}

func (j Journey) Distances() []float64 {
	distances := make([]float64, 0, len(j.Legs))
	for _, leg := range j.Legs {
		distances = append(distances, leg.Distance)
	}
	return distances
}

// ParseJourney splits a journey such as "JFK-LHR-SIN" into its codes.
// Empty segments are kept so they fail the lookup instead of vanishing.
func ParseJourney(journey string) []string {
	if strings.TrimSpace(journey) == "" {
		return nil
	}
	codes := strings.Split(journey, JourneySeparator)
	for i, code := range codes {
		codes[i] = strings.ToUpper(strings.TrimSpace(code))
	}
	return codes
}

// CalculateJourney computes the great-circle distance of every leg between
// consecutive codes, plus their sum.
func CalculateJourney(codes []string, index Index) (Journey, error) {
	if len(codes) < 2 {
		return Journey{}, ErrInvalidInput
	}

	journey := Journey{
		Codes: codes,
		Legs:  make([]Leg, 0, len(codes)-1),
	}
	for i := 0; i < len(codes)-1; i++ {
		from, to := codes[i], codes[i+1]
		distance, err := legDistance(index, from, to)
		if err != nil {
			return Journey{}, err
		}
		journey.Legs = append(journey.Legs, Leg{From: from, To: to, Distance: distance})
	}

	for _, leg := range journey.Legs {
		journey.Total += leg.Distance
	}
	return journey, nil
}

func legDistance(index Index, from, to string) (float64, error) {
	origin, err := index.Lookup(from)
	if err != nil {
		return 0, err
	}
	destination, err := index.Lookup(to)
	if err != nil {
		return 0, err
	}

	p, err := coordinatesOf(origin)
	if err != nil {
		return 0, err
	}
	q, err := coordinatesOf(destination)
	if err != nil {
		return 0, err
	}
	return Between(p, q), nil
}

func coordinatesOf(airport typing.Airport) (Coordinates, error) {
	lat, lon, err := airport.Coordinates()
	return Coordinates{Lat: lat, Lon: lon}, err
}
