package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const AirportsDataURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"

var ErrBadStatus = errors.New("unexpected response status")

// Download fetches url into dest, creating its directory if needed.
// The request is bound to ctx, so any deadline set by the caller applies.
func Download(ctx context.Context, url string, dest string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	n, err := writeAtomic(dir, dest, resp.Body)
	if err != nil {
		return "", err
	}

	log.Infof("action: download | result: success | url: %s | dest: %s | bytes: %d", url, dest, n)
	return dest, nil
}

// writeAtomic copies body into a temp file next to dest and renames it over
// dest once complete, so a failed transfer never leaves a partial dataset.
func writeAtomic(dir, dest string, body io.Reader) (n int64, err error) {
	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	n, err = io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, err
	}
	return n, os.Rename(tmp.Name(), dest)
}
