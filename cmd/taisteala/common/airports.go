package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/franciscopereira987/taisteala/pkg/distance"
	"github.com/franciscopereira987/taisteala/pkg/reader"
	"github.com/franciscopereira987/taisteala/pkg/typing"
)

func fetch(ctx context.Context, config Config) error {
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}
	_, err := reader.Download(ctx, config.DataURL, config.DataDest)
	return err
}

func loadAirports(config Config) ([]typing.Airport, error) {
	airports, err := reader.LoadAirports(config.DataDest)
	if err != nil {
		return nil, err
	}
	log.Infof("action: load_airports | result: success | path: %s | airports: %d", config.DataDest, len(airports))
	return airports, nil
}

// LoadAirports downloads the dataset into config.DataDest and reports how
// many records it holds.
func LoadAirports(ctx context.Context, config Config, out io.Writer) error {
	if err := fetch(ctx, config); err != nil {
		return err
	}
	airports, err := loadAirports(config)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Loaded %d airports\n", len(airports))
	return err
}

// LoadIndex builds the IATA index from config.DataDest, downloading the
// dataset first when asked to or when there is no local copy.
func LoadIndex(ctx context.Context, config Config) (distance.Index, error) {
	_, err := os.Stat(config.DataDest)
	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return nil, err
	}
	if config.Fetch || missing {
		if err := fetch(ctx, config); err != nil {
			return nil, err
		}
	}

	airports, err := loadAirports(config)
	if err != nil {
		return nil, err
	}
	index := distance.BuildIndex(airports)
	log.Debugf("action: build_index | result: success | codes: %d", len(index))
	return index, nil
}
