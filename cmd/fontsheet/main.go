// Package main provides the CLI entry point for fontsheet-go.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/encoding"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/layout"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/output"
)

var (
	jisToSJIS bool
	offset    int
	verbose   bool
	envFile   string

	previewText    string
	previewCharset string
	previewScale   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fontsheet <input.bdf> <output.png>",
		Short: "Convert a bitmap font into a sprite sheet image",
		Long: `fontsheet-go reads glyph records (STARTCHAR/BBX/BITMAP/ENDCHAR) from a
bitmap font description and writes a grayscale sheet with one 16-column grid
cell per code point.`,
		Args:              cobra.ExactArgs(2),
		PersistentPreRunE: setup,
		RunE:              run,
	}

	addOptionFlags(rootCmd.PersistentFlags())

	previewCmd := &cobra.Command{
		Use:   "preview <input.bdf> <output.png>",
		Short: "Render sample text with the sheet built from a bitmap font",
		Args:  cobra.ExactArgs(2),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVarP(&previewText, "text", "t", "", "Text to render (required)")
	previewCmd.Flags().StringVar(&previewCharset, "charset", "", "How text maps to codes: unicode, sjis, jis (default: sjis with --jis-to-sjis, else unicode)")
	previewCmd.Flags().IntVar(&previewScale, "scale", 1, "Integer upscaling factor")
	rootCmd.AddCommand(previewCmd)

	return rootCmd
}

// addOptionFlags registers the conversion flags shared by all commands.
func addOptionFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&jisToSJIS, "jis-to-sjis", false, "Convert glyph codes from JIS X 0208 to Shift-JIS")
	flags.IntVar(&offset, "offset", 0, "Number of empty codes to place before the first glyph")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&envFile, "env-file", "", "Load option defaults from this env file (default: .env.local or .env)")
}

func setup(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// resolveOptions merges env defaults with flags given on the command line.
func resolveOptions(cmd *cobra.Command) (fontsheet.Options, error) {
	loaded, err := fontsheet.LoadEnvFile(envFile)
	if err != nil {
		return fontsheet.Options{}, err
	}
	if loaded != "" {
		logrus.Debugf("Loaded env file %s", loaded)
	}

	opts, err := fontsheet.OptionsFromEnv()
	if err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("jis-to-sjis") {
		opts.JISToSJIS = jisToSJIS
	}
	if cmd.Flags().Changed("offset") {
		opts.Offset = offset
	}

	return opts, opts.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	opts, err := resolveOptions(cmd)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	cmd.SilenceUsage = true

	res, err := fontsheet.Convert(inputPath, outputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"glyphs": res.Glyphs,
		"size":   res.Sheet.Bounds().Size(),
	}).Infof("Wrote %s", outputPath)

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	opts, err := resolveOptions(cmd)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	charset := encoding.CharsetUnicode
	if opts.JISToSJIS {
		charset = encoding.CharsetShiftJIS
	}
	if previewCharset != "" {
		if charset, err = encoding.ParseCharset(previewCharset); err != nil {
			return err
		}
	}
	if previewText == "" {
		return errors.New("preview text must not be empty")
	}
	if previewScale < 1 {
		return fmt.Errorf("invalid scale: %d", previewScale)
	}
	cmd.SilenceUsage = true

	codes, err := encoding.Codes(previewText, charset)
	if err != nil {
		return fmt.Errorf("failed to encode preview text: %w", err)
	}

	text, err := fontsheet.ReadInput(inputPath)
	if err != nil {
		return err
	}
	res, err := fontsheet.Build(text, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	face := layout.NewFace(res.Sheet, res.Geometry)
	img := output.RenderPreview(face, codes, previewScale)
	if err := output.SaveImage(img, outputPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logrus.WithField("codes", len(codes)).Infof("Wrote preview %s", outputPath)
	return nil
}
