package reader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/franciscopereira987/taisteala/pkg/typing"
)

type AirportsReader struct {
	file io.Closer
	csv  *csv.Reader
}

func newCsvReader(in io.Reader) *csv.Reader {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

func NewAirportsReader(filepath string) (*AirportsReader, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	return &AirportsReader{
		file: file,
		csv:  newCsvReader(file),
	}, nil
}

// ReadAirport returns the next record, or io.EOF once the file is exhausted.
func (reader *AirportsReader) ReadAirport() (typing.Airport, error) {
	record, err := reader.csv.Read()
	if err != nil {
		return nil, err
	}
	return typing.NewAirport(record), nil
}

func (reader *AirportsReader) Close() error {
	return reader.file.Close()
}

func LoadAirports(filepath string) ([]typing.Airport, error) {
	reader, err := NewAirportsReader(filepath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return readAll(reader)
}

func ReadAirports(in io.Reader) ([]typing.Airport, error) {
	return readAll(&AirportsReader{
		file: io.NopCloser(in),
		csv:  newCsvReader(in),
	})
}

func readAll(reader Reader) ([]typing.Airport, error) {
	var airports []typing.Airport
	for {
		airport, err := reader.ReadAirport()
		if errors.Is(err, io.EOF) {
			return airports, nil
		}
		if err != nil {
			return nil, err
		}
		airports = append(airports, airport)
	}
}
