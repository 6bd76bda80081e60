package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mapstitch/internal/logging"
	"github.com/yaklabco/mapstitch/pkg/srccache"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

type resolveFlags struct {
	offset     int
	line       int
	column     int
	lineBase   int
	columnBase int
}

func newResolveCommand() *cobra.Command {
	flags := &resolveFlags{offset: -1, line: -1}

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Convert between offsets and line/column positions",
		Long: `Convert a position in a file between its linear byte offset and its
line/column form, under a configurable numbering base.

Examples:
  mapstitch resolve gen.js --offset 420
  mapstitch resolve gen.js --line 12 --column 4
  mapstitch resolve gen.js --line 13 --column 5 --line-base 1 --column-base 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", -1, "offset to convert to line/column")
	cmd.Flags().IntVar(&flags.line, "line", -1, "line to convert to an offset")
	cmd.Flags().IntVar(&flags.column, "column", 0, "column to convert to an offset")
	cmd.Flags().IntVar(&flags.lineBase, "line-base", 0, "first line number")
	cmd.Flags().IntVar(&flags.columnBase, "column-base", 0, "first column number")

	return cmd
}

func runResolve(path string, flags *resolveFlags) error {
	logger := logging.NewInteractive()

	num := textpos.Numbering{LineBase: flags.lineBase, ColumnBase: flags.columnBase}
	cache := srccache.New(num)

	switch {
	case flags.offset >= 0:
		_, ix, err := cache.Get(path)
		if err != nil {
			return err
		}
		pos := ix.PositionFor(flags.offset)
		logger.Info("resolved",
			logging.FieldPath, path,
			logging.FieldOffset, flags.offset,
			logging.FieldLine, pos.Line,
			logging.FieldColumn, pos.Column,
		)
		return nil

	case flags.line >= 0:
		offset, err := cache.Lookup(path, flags.line, flags.column)
		if err != nil {
			return err
		}
		logger.Info("resolved",
			logging.FieldPath, path,
			logging.FieldLine, flags.line,
			logging.FieldColumn, flags.column,
			logging.FieldOffset, offset,
		)
		return nil

	default:
		return fmt.Errorf("pass --offset or --line")
	}
}
