package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mapstitch/internal/logging"
	"github.com/yaklabco/mapstitch/pkg/config"
	"github.com/yaklabco/mapstitch/pkg/editplan"
	"github.com/yaklabco/mapstitch/pkg/mapbuf"
)

func newApplyCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <script.yaml>",
		Short: "Apply an edit script to a mapped file",
		Long: `Apply an edit script to a mapped file.

The script names an input file, an output file, and a list of operations.
Delete operations are collected into one batch, checked for overlap, and
applied back-to-front against the freshly loaded buffer, so their offsets
all address the input text. Insert and append operations then run in
script order against the edited buffer.

Examples:
  mapstitch apply strip.yaml            # Edit per script, write output + map
  mapstitch apply strip.yaml --dry-run  # Report what would change`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")

	return cmd
}

func runApply(ctx context.Context, scriptPath string, dryRun bool) error {
	logger := logging.FromContext(ctx)

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("script %s: %w", scriptPath, err)
	}

	// Paths in the script resolve relative to the script's directory.
	dir := filepath.Dir(scriptPath)
	inputPath := resolvePath(dir, script.Input)
	outputPath := resolvePath(dir, script.Output)

	buf, err := mapbuf.Load(ctx, inputPath)
	if err != nil {
		return err
	}

	logger.Debug("loaded input",
		logging.FieldInput, inputPath,
		logging.FieldLength, buf.Len(),
		logging.FieldPoints, buf.PointCount(),
	)

	pointsBefore := buf.PointCount()

	if err := applyOperations(ctx, buf, script, dir); err != nil {
		return err
	}

	logger.Info("applied script",
		logging.FieldScript, scriptPath,
		logging.FieldOperations, len(script.Operations),
		logging.FieldLength, buf.Len(),
		logging.FieldPoints, buf.PointCount(),
		logging.FieldDryRun, dryRun,
	)

	if dryRun {
		logger.Info("dry run, not writing",
			logging.FieldOutput, outputPath,
			"points_before", pointsBefore,
		)
		return nil
	}

	if err := mapbuf.Save(ctx, buf, outputPath); err != nil {
		return err
	}

	logger.Info("wrote output",
		logging.FieldOutput, outputPath,
		logging.FieldMapPath, outputPath+".map",
	)
	return nil
}

// applyOperations runs the script's delete batch, then its insert and
// append operations in script order.
func applyOperations(ctx context.Context, buf *mapbuf.Buffer, script *config.Script, dir string) error {
	plan := editplan.NewPlan()
	for _, op := range script.Operations {
		if op.Op == config.OpDelete {
			plan.Delete(op.Start, op.End)
		}
	}
	if err := plan.Apply(buf); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}

	for i, op := range script.Operations {
		if op.Op == config.OpDelete {
			continue
		}

		frag, err := loadFragment(ctx, op, dir)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}

		switch op.Op {
		case config.OpInsert:
			err = buf.Insert(op.At, frag)
		case config.OpAppend:
			err = buf.Append(frag)
		}
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i+1, op.Op, err)
		}
	}
	return nil
}

// loadFragment turns an operation's text or file into a splice fragment.
// A file fragment is loaded as a mapped buffer, so its points merge in.
func loadFragment(ctx context.Context, op config.Operation, dir string) (mapbuf.Fragment, error) {
	if op.File != "" {
		frag, err := mapbuf.Load(ctx, resolvePath(dir, op.File))
		if err != nil {
			return nil, err
		}
		return frag, nil
	}
	return mapbuf.Text(op.Text), nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
