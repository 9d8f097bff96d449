package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/pipeline"
)

// defaultOutputBase is used when --output is not given.
const defaultOutputBase = "steprepeat"

// renderFlags holds the command-line flags for the render command that
// override the [render] section of the config file.
type renderFlags struct {
	output   string
	formats  string
	scale    float64
	seed     int64
	all      bool
	noCache  bool
	noLabels bool
	noMargin bool
}

// renderCommand creates the render command for writing previews.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		in    layoutInputs
		flags renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the preferred layout to SVG, PNG, JSON or text",
		Long: `Render the preferred layout to SVG, PNG, JSON or text.

Takes the same inputs as 'layout'. With several formats, or with --all,
files are named <output>.<format> and <output>.<orientation>.<format>.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := in.options(c.Config)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags)
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (default: steprepeat)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg, png, json, txt (comma-separated; default from config)")
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultScale, "PNG pixels per unit")
	cmd.Flags().Int64Var(&flags.seed, "seed", pipeline.DefaultSeed, "palette seed")
	cmd.Flags().BoolVar(&flags.all, "all", false, "also render the non-preferred orientation")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.noLabels, "no-labels", false, "omit item numbers")
	cmd.Flags().BoolVar(&flags.noMargin, "no-margin", false, "omit the margin outline")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// apply overrides config-derived options with the flags the user set.
func (f renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	if f.formats != "" {
		formats, err := pipeline.ParseFormats(f.formats)
		if err != nil {
			return err
		}
		opts.Formats = formats
	} else if ext := formatOf(f.output); ext != "" {
		opts.Formats = []string{ext}
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = f.scale
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
	opts.All = f.all
	if f.noLabels {
		opts.ShowLabels = false
	}
	if f.noMargin {
		opts.ShowMargin = false
	}
	return opts.ValidateAndSetDefaults()
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags renderFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	paths := outputPaths(flags.output, result.Artifacts)
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeFile(paths[name], result.Artifacts[name]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(names)))

	best := result.Best()
	printSuccess("Rendered %s layout", StyleHighlight.Render(result.Outcome.Preferred.String()))
	for _, name := range names {
		printFile(paths[name])
	}
	printStats(best, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps artifact names to file paths. A single artifact is
// written to output as given when it already carries that format's
// extension; otherwise files are named base.<artifact>.
func outputPaths(output string, artifacts map[string][]byte) map[string]string {
	paths := make(map[string]string, len(artifacts))
	if len(artifacts) == 1 && output != "" {
		for name := range artifacts {
			if formatOf(output) == name {
				paths[name] = output
				return paths
			}
		}
	}
	base := basePath(output)
	for name := range artifacts {
		paths[name] = base + "." + name
	}
	return paths
}

// basePath strips a known format extension from output. An empty output
// yields defaultOutputBase.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// formatOf returns the output format named by path's extension, or "".
func formatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return ""
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
