package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Format is the encoding of a tabular source.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the format from the location's extension. Anything that
// is not a spreadsheet is read as CSV.
func DetectFormat(location string) Format {
	p := location
	if IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			p = u.Path
		}
	}
	if strings.EqualFold(path.Ext(p), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Reader reads a raw table from a file path or an http(s) URL.
type Reader struct {
	fetcher *Fetcher
	sheet   string
}

// NewReader creates a Reader. fetcher may be nil when only local files are
// read; sheet selects the worksheet of spreadsheet sources.
func NewReader(fetcher *Fetcher, sheet string) *Reader {
	return &Reader{
		fetcher: fetcher,
		sheet:   sheet,
	}
}

// Read loads the whole table at location.
func (r *Reader) Read(ctx context.Context, location string) (*Table, error) {
	data, err := r.open(ctx, location)
	if err != nil {
		return nil, err
	}

	switch DetectFormat(location) {
	case FormatXLSX:
		return ParseXLSX(bytes.NewReader(data), r.sheet)
	default:
		return ParseCSV(bytes.NewReader(data))
	}
}

func (r *Reader) open(ctx context.Context, location string) ([]byte, error) {
	if IsURL(location) {
		if r.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", location)
		}
		return r.fetcher.Fetch(ctx, location)
	}
	return readFile(location)
}

func readFile(location string) ([]byte, error) {
	file, err := os.Open(filepath.Clean(location))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, location)
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", location, err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("file.Stat(%s) > %w", location, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceMalformed, location)
	}

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll(%s) > %w", location, err)
	}
	return contents, nil
}
