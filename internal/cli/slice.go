package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mapstitch/internal/logging"
	"github.com/yaklabco/mapstitch/pkg/mapbuf"
)

func newSliceCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "slice <file> <start> <end>",
		Short: "Extract a byte range into a new mapped file",
		Long: `Extract the text between byte offsets start and end of a mapped file
into a new mapped file. Mapping points sitting on either boundary,
end included, are kept, so a slice re-inserted elsewhere keeps its
boundary annotations.

Examples:
  mapstitch slice bundle.js 120 480 -o part.js`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start offset %q is not a number", args[1])
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end offset %q is not a number", args[2])
			}
			return runSlice(cmd.Context(), args[0], output, start, end)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runSlice(ctx context.Context, path, output string, start, end int) error {
	logger := logging.FromContext(ctx)

	buf, err := mapbuf.Load(ctx, path)
	if err != nil {
		return err
	}

	slice, err := buf.Substring(start, end)
	if err != nil {
		return err
	}

	if err := mapbuf.Save(ctx, slice, output); err != nil {
		return err
	}

	logger.Info("wrote slice",
		logging.FieldInput, path,
		logging.FieldStart, start,
		logging.FieldEnd, end,
		logging.FieldOutput, output,
		logging.FieldPoints, slice.PointCount(),
	)
	return nil
}
