// Package favicon provides the favicon command, which crops local icon files
// into circular PNGs.
package favicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	commonConcurrency "github.com/hibare/GoCommon/v2/pkg/concurrency"
	"github.com/jjankovic/site/internal/config"
	"github.com/jjankovic/site/internal/favicon"
	"github.com/spf13/cobra"
)

// ErrAllIconsFailed is returned when no input icon could be cropped.
var ErrAllIconsFailed = errors.New("all icons failed")

var (
	outDir  string
	dataURI bool
)

// FaviconCmd represents the favicon command.
var FaviconCmd = &cobra.Command{
	Use:   "favicon [icon files...]",
	Short: "Crop icon images into circular favicons",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), cmd.OutOrStdout(), Options{
			Files:   args,
			OutDir:  outDir,
			DataURI: dataURI,
			Workers: config.Current.Favicon.Workers,
		})
	},
}

func init() {
	FaviconCmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the cropped icons")
	FaviconCmd.Flags().BoolVar(&dataURI, "data-uri", false, "print data URIs instead of writing files")
}

// Options controls Run.
type Options struct {
	Files   []string
	OutDir  string
	DataURI bool
	Workers int
}

// OutputPath returns where the cropped version of file is written.
func OutputPath(dir, file string) string {
	base := filepath.Base(file)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+"-round.png")
}

// Run crops every file concurrently. Individual failures are logged; an error
// is returned only when every file failed.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	results := sync.Map{}
	tasks := make([]commonConcurrency.ParallelTask, len(opts.Files))
	for i, file := range opts.Files {
		tasks[i] = commonConcurrency.ParallelTask{
			Name: file,
			Task: func(ctx context.Context) error {
				out, err := cropFile(ctx, file, opts)
				if err != nil {
					return fmt.Errorf("icon %s: %w", file, err)
				}
				results.Store(file, out)
				return nil
			},
		}
	}

	errsMap := commonConcurrency.RunParallelTasks(
		ctx,
		commonConcurrency.ParallelOptions{WorkerCount: max(opts.Workers, 1)},
		tasks...)

	for task, err := range errsMap {
		slog.ErrorContext(ctx, "Favicon crop failed", "task", task, "error", err)
	}

	// Report in argument order.
	for _, file := range opts.Files {
		out, ok := results.Load(file)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", file, out); err != nil {
			return err
		}
	}

	if len(opts.Files) > 0 && len(errsMap) == len(opts.Files) {
		return fmt.Errorf("%w: %v", ErrAllIconsFailed, errsMap)
	}
	return nil
}

func cropFile(ctx context.Context, file string, opts Options) (string, error) {
	img, err := favicon.FileLoader{}.Load(ctx, file)
	if err != nil {
		return "", err
	}
	cropped := favicon.Crop(img)

	if opts.DataURI {
		return favicon.EncodeDataURI(cropped)
	}

	data, err := favicon.EncodePNG(cropped)
	if err != nil {
		return "", err
	}

	target := OutputPath(opts.OutDir, file)
	if err := os.WriteFile(target, data, 0o644); err != nil { // #nosec G306
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	slog.DebugContext(ctx, "Favicon written", "source", file, "target", target, "size", cropped.Bounds().Dx())
	return target, nil
}
