package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mapstitch/internal/ui/pretty"
	"github.com/yaklabco/mapstitch/pkg/mapbuf"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

// jsonPoint is the JSON shape of one mapping point for inspect output.
type jsonPoint struct {
	Offset          int    `json:"offset"`
	GeneratedLine   int    `json:"generatedLine"`
	GeneratedColumn int    `json:"generatedColumn"`
	Name            string `json:"name,omitempty"`
	Source          string `json:"source"`
	OriginalLine    int    `json:"originalLine"`
	OriginalColumn  int    `json:"originalColumn"`
}

// jsonInspect is the top-level JSON structure of inspect output.
type jsonInspect struct {
	Path   string      `json:"path"`
	Bytes  int         `json:"bytes"`
	Lines  int         `json:"lines"`
	Points []jsonPoint `json:"points"`
}

func newInspectCommand(color *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a mapped file's mapping points",
		Long: `Load a mapped file and print its mapping points: buffer offset,
generated line/column, name, and original source position.

Examples:
  mapstitch inspect bundle.js                 # Styled table
  mapstitch inspect bundle.js --format json   # JSON for tooling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], format, *color)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

func runInspect(ctx context.Context, path, format, color string) error {
	buf, err := mapbuf.Load(ctx, path)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return writeInspectJSON(os.Stdout, path, buf)
	case "table":
		styles := pretty.NewStyles(pretty.IsColorEnabled(color, os.Stdout))
		fmt.Print(styles.FormatSummary(path, buf))
		fmt.Print(styles.FormatPointTable(buf, pretty.TermWidth(os.Stdout)))
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeInspectJSON(w *os.File, path string, buf *mapbuf.Buffer) error {
	ix := textpos.NewIndex(buf.Text(), textpos.Numbering{LineBase: 1})

	out := jsonInspect{
		Path:   path,
		Bytes:  buf.Len(),
		Lines:  ix.LineCount(),
		Points: make([]jsonPoint, 0, buf.PointCount()),
	}
	for _, p := range buf.Points() {
		pos := ix.PositionFor(p.Offset)
		out.Points = append(out.Points, jsonPoint{
			Offset:          p.Offset,
			GeneratedLine:   pos.Line,
			GeneratedColumn: pos.Column,
			Name:            p.Name,
			Source:          p.Source,
			OriginalLine:    p.OriginalLine,
			OriginalColumn:  p.OriginalColumn,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode inspect output: %w", err)
	}
	return nil
}
