package formatter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/svelte-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/svelte-imports-group/pkg/vcs"
)

type FormatterConfig struct {
	InPlace               bool     // whether to modify files in place
	Workers               int      // max concurrent file workers, 0 = number of CPUs
	SkipGlobs             []string // doublestar patterns excluded from discovery
	ExtraBuiltinModules   []string // additional builtin-module names
	ExtraFrameworkModules []string // additional framework-runtime names
	Logger                *zap.Logger
}

// formatter handles the import grouping and preamble ordering logic
type formatter struct {
	config FormatterConfig
	log    *zap.Logger
}

// New creates a new formatter with the specified configuration
func New(config FormatterConfig) *formatter {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &formatter{
		config: config,
		log:    log,
	}
}

func (g *formatter) getInPlace() bool {
	return g.config.InPlace
}

func (g *formatter) getWorkers() int {
	if g.config.Workers > 0 {
		return g.config.Workers
	}
	return runtime.NumCPU()
}

// FormatSource rewrites one file's text, dispatching on file kind. Returns
// the rewritten text, which equals src when the file is already canonical.
func (g *formatter) FormatSource(filePath, src string) (string, error) {
	switch utils.KindOf(filePath) {
	case utils.KindComponent:
		return g.FormatComponent(src)
	case utils.KindScript:
		return g.FormatScript(src)
	default:
		return "", fmt.Errorf("%s: %s", errors.ErrMsgUnsupportedFileKind, filePath)
	}
}

// ProcessFile processes a single source file. Without in-place mode the
// rewritten text goes to stdout; with it, the file is rewritten atomically
// and only when the canonical order differs.
func (g *formatter) ProcessFile(filePath string) error {
	changed, output, err := g.transformFile(filePath)
	if err != nil {
		return err
	}

	if !g.getInPlace() {
		fmt.Print(output)
		return nil
	}
	if !changed {
		return nil
	}
	return g.writeFile(filePath, []byte(output))
}

// transformFile reads and transforms a file entirely in memory.
func (g *formatter) transformFile(filePath string) (bool, string, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return false, "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	output, err := g.FormatSource(filePath, string(src))
	if err != nil {
		return false, "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToFormatFile, err)
	}
	return output != string(src), output, nil
}

// writeFile performs the all-or-nothing rewrite: transform output is staged
// in a temp file in the same directory and moved over the original, so a
// failure never leaves the file partially rewritten.
func (g *formatter) writeFile(filePath string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(filePath); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, ".sig-*")
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return nil
}

// ProcessFiles processes multiple source files concurrently. Files share no
// state, so workers need no coordination; one file's failure never blocks
// another file's processing.
func (g *formatter) ProcessFiles(ctx context.Context, filePaths []string) error {
	var (
		mu             sync.Mutex
		processedCount int
		errorCount     int
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.getWorkers())

	for _, filePath := range filePaths {
		filePath := filePath
		eg.Go(func() error {
			// cancellation stops before emitting; no partial output
			if ctx.Err() != nil {
				return ctx.Err()
			}

			changed, output, err := g.transformFile(filePath)
			if err != nil {
				g.log.Warn("file skipped", zap.String("file", filePath), zap.Error(err))
				fmt.Printf(errors.InfoMsgErrorProcessing+"\n", filePath, err)
				mu.Lock()
				errorCount++
				mu.Unlock()
				return nil
			}

			if changed && g.getInPlace() {
				if err := g.writeFile(filePath, []byte(output)); err != nil {
					g.log.Warn("write failed", zap.String("file", filePath), zap.Error(err))
					mu.Lock()
					errorCount++
					mu.Unlock()
					return nil
				}
				fmt.Printf(errors.InfoMsgProcessedFiles+"\n", filePath)
			} else if changed {
				g.log.Info("file not canonical", zap.String("file", filePath))
			}

			mu.Lock()
			processedCount++
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Printf(errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (g *formatter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return g.ProcessFile(path)
	}

	// When processing directories, in-place mode is recommended
	if !g.getInPlace() {
		fmt.Printf(errors.WarnMsgProcessingDirWithoutInPlace + "\n")
		fmt.Printf(errors.InfoMsgUseInPlaceFlag + "\n\n")
	}

	sourceFiles, err := utils.FindSourceFiles(path, g.config.SkipGlobs)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}

	if len(sourceFiles) == 0 {
		fmt.Printf(errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil
	}

	fmt.Printf(errors.InfoMsgFoundSourceFiles+"\n\n", len(sourceFiles), path)
	return g.ProcessFiles(ctx, sourceFiles)
}

// ProcessChanged processes the files currently reported modified or
// untracked by the VCS status provider, filtered to supported kinds.
func (g *formatter) ProcessChanged(ctx context.Context, dir string) error {
	root, err := vcs.RepoRoot(ctx, dir)
	if err != nil {
		return err
	}

	changed, err := vcs.ChangedFiles(ctx, root)
	if err != nil {
		return err
	}

	var sourceFiles []string
	for _, filePath := range changed {
		if !utils.IsSourceFile(filepath.Base(filePath)) {
			continue
		}
		rel, relErr := filepath.Rel(root, filePath)
		if relErr == nil && utils.MatchesAnyGlob(rel, g.config.SkipGlobs) {
			continue
		}
		sourceFiles = append(sourceFiles, filePath)
	}

	if len(sourceFiles) == 0 {
		fmt.Println(errors.InfoMsgNoChangedFiles)
		return nil
	}
	return g.ProcessFiles(ctx, sourceFiles)
}
