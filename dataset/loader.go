package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/healthplot/compress"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/format"
	"github.com/arloliu/healthplot/internal/options"
)

var (
	errMissingColumn = errors.New("missing required column")
	errNoRows        = errors.New("no data rows")
)

// LoadConfig controls how a dataset file is read.
type LoadConfig struct {
	// Compression overrides suffix detection when non-zero.
	Compression format.CompressionType
	// Comma is the field delimiter. Defaults to ','.
	Comma rune
}

// LoadOption is a functional option for LoadConfig.
type LoadOption = options.Option[*LoadConfig]

// WithCompression forces the codec used to decode the file.
func WithCompression(c format.CompressionType) LoadOption {
	return options.New(func(cfg *LoadConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.Compression = c

		return nil
	})
}

// WithComma sets the field delimiter.
func WithComma(r rune) LoadOption {
	return options.New(func(cfg *LoadConfig) error {
		if r == 0 || r == '"' || r == '\r' || r == '\n' {
			return fmt.Errorf("%w: delimiter %q", errs.ErrUnsupportedFormat, r)
		}
		cfg.Comma = r

		return nil
	})
}

func newLoadConfig(opts []LoadOption) (*LoadConfig, error) {
	cfg := &LoadConfig{Comma: ','}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and parses the dataset at path.
//
// The codec is chosen from the file suffix unless WithCompression is given.
// All failures are returned as *errs.DataLoadError with Path set.
func LoadFile(path string, opts ...LoadOption) (*Dataset, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}

	ct := cfg.Compression
	if ct == 0 {
		ct = format.CompressionFromPath(path)
	}
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}
	plain, err := codec.Decompress(raw)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}

	ds, err := parse(bytes.NewReader(plain), cfg)
	if err != nil {
		var dle *errs.DataLoadError
		if errors.As(err, &dle) && dle.Path == "" {
			dle.Path = path
		}

		return nil, err
	}

	return ds, nil
}

// Read parses an uncompressed CSV stream.
func Read(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, &errs.DataLoadError{Err: err}
	}

	return parse(r, cfg)
}

// columnIndex maps required columns to their position in the header.
type columnIndex struct {
	state   int
	abbr    int
	metrics map[Metric]int
}

func readHeader(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	idx := columnIndex{metrics: make(map[Metric]int, len(metricNames))}
	lookup := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, &errs.DataLoadError{Line: 1, Column: name, Err: errMissingColumn}
		}

		return i, nil
	}

	var err error
	if idx.state, err = lookup("state"); err != nil {
		return idx, err
	}
	if idx.abbr, err = lookup("abbr"); err != nil {
		return idx, err
	}
	for _, m := range Metrics() {
		i, err := lookup(m.String())
		if err != nil {
			return idx, err
		}
		idx.metrics[m] = i
	}

	return idx, nil
}

func parse(r io.Reader, cfg *LoadConfig) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errNoRows
		}

		return nil, &errs.DataLoadError{Line: 1, Err: err}
	}

	idx, err := readHeader(header)
	if err != nil {
		return nil, err
	}

	var (
		obs   []Observation
		lines []int // first line of each record; quoted fields may span lines
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &errs.DataLoadError{Err: err}
		}
		line, _ := cr.FieldPos(0)

		o := Observation{
			State: record[idx.state],
			Abbr:  record[idx.abbr],
		}
		for _, m := range Metrics() {
			cell := strings.TrimSpace(record[idx.metrics[m]])
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, &errs.DataLoadError{Line: line, Column: m.String(), Err: perr}
			}
			o.set(m, v)
		}
		obs = append(obs, o)
		lines = append(lines, line)
	}

	if len(obs) == 0 {
		return nil, &errs.DataLoadError{Err: fmt.Errorf("%w: %w", errNoRows, errs.ErrEmptyDataset)}
	}

	ds, err := New(obs)
	if err != nil {
		var dle *errs.DataLoadError
		if errors.As(err, &dle) && dle.Line >= 1 && dle.Line <= len(lines) {
			// New reports 1-based record numbers.
			dle.Line = lines[dle.Line-1]
		}

		return nil, err
	}

	return ds, nil
}
