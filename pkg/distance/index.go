package distance

import (
	"errors"
	"fmt"

	"github.com/franciscopereira987/taisteala/pkg/typing"
)

var ErrNotFound = errors.New("unknown IATA code")

// Index maps IATA codes to their airport record.
type Index map[string]typing.Airport

// BuildIndex keys every airport by its IATA code. Airports without one are
// left out, and a repeated code keeps the last record seen.
func BuildIndex(airports []typing.Airport) Index {
	index := make(Index, len(airports))
	for _, airport := range airports {
		code := airport.IATA()
		if code == "" {
			continue
		}
		index[code] = airport
	}
	return index
}

func (index Index) Lookup(code string) (typing.Airport, error) {
	airport, ok := index[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return airport, nil
}
