package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/compress"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/format"
	"github.com/arloliu/healthplot/internal/logger"
)

func packCmd() *cobra.Command {
	var in, out, codec string

	c := &cobra.Command{
		Use:   "pack",
		Short: "Validate a dataset and write it compressed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ct, ok := format.ParseCompression(codec)
			if !ok {
				return fmt.Errorf("%w: codec %q", errs.ErrUnsupportedFormat, codec)
			}

			plain, err := readPlain(in)
			if err != nil {
				return err
			}
			ds, err := dataset.Read(bytes.NewReader(plain))
			if err != nil {
				return err
			}

			packed, stats, err := compress.CompressWithStats(ct, plain)
			if err != nil {
				return err
			}

			if out == "" {
				out = strings.TrimSuffix(in, format.CompressionFromPath(in).Extension()) + ct.Extension()
			}
			if out == in {
				return fmt.Errorf("refusing to overwrite input %s", in)
			}
			if err := writeFile(out, func(w io.Writer) error {
				_, err := w.Write(packed)
				return err
			}); err != nil {
				return err
			}

			logger.L().Info("pack.done", "in", in, "out", out, "codec", ct.String(),
				"rows", ds.Len(), "ratio", stats.CompressionRatio())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d -> %d bytes (%.1f%% saved)\n",
				out, ds.Len(), stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

			return nil
		},
	}

	c.Flags().StringVarP(&in, "in", "i", "", "input CSV (optionally compressed)")
	c.Flags().StringVarP(&out, "out", "o", "", "output file (default: input with the codec suffix)")
	c.Flags().StringVarP(&codec, "codec", "c", "zstd", "zstd, s2, lz4 or none")
	_ = c.MarkFlagRequired("in")

	return c
}

func readPlain(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}

	codec, err := compress.GetCodec(format.CompressionFromPath(path))
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}
	plain, err := codec.Decompress(raw)
	if err != nil {
		return nil, &errs.DataLoadError{Path: path, Err: err}
	}

	return plain, nil
}
