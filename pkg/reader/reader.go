package reader

import "github.com/franciscopereira987/taisteala/pkg/typing"

type Reader interface {
	ReadAirport() (typing.Airport, error)
	Close() error
}
