package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-sfc/internal/config"
	"github.com/grindlemire/go-sfc/internal/log"
	"github.com/grindlemire/go-sfc/internal/sfcgen"
	"github.com/grindlemire/go-sfc/pkg/sfc"
)

type compileFlags struct {
	outDir     string
	stdout     bool
	configPath string
	jobs       int
	verbose    bool
}

func compileCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "compile [path...]",
		Short: "Compile .vue files to JavaScript modules",
		Long: `Compile .vue files to JavaScript modules.

Each Foo.vue is written to Foo.vue.js next to it, or into the --out
directory. Paths may be files, directories, or a recursive pattern
such as ./...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), args, flags, cmd.OutOrStdout(), cmd.ErrOrStderr(), true)
		},
	}

	addCommonFlags(cmd, &flags)
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "output directory (default: next to each source file)")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "print compiled modules instead of writing files")
	return cmd
}

func checkCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check .vue files without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), args, flags, cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
		},
	}

	addCommonFlags(cmd, &flags)
	return cmd
}

func addCommonFlags(cmd *cobra.Command, flags *compileFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to sfc.yaml (default: ./sfc.yaml if present)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files compiled concurrently (default: number of CPUs)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
}

// runCompile compiles every file found under paths. With write false
// nothing is written and only errors are reported.
func runCompile(ctx context.Context, paths []string, flags compileFlags, stdout, stderr io.Writer, write bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.verbose {
		log.SetOutput(stderr)
		defer log.SetOutput(nil)
	}

	// Default to current directory if no paths specified
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", sourceExt)
	}
	log.Debug("found %d %s file(s)", len(files), sourceExt)

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.jobs > 0 {
		cfg.Jobs = flags.jobs
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	outputs, failures, err := compileAll(ctx, files, opts, cfg.Jobs)
	if err != nil {
		return err
	}

	if write {
		for i, file := range files {
			if failures[i] != nil {
				continue
			}
			if err := emit(cfg, file, outputs[i], flags.stdout, len(files) > 1, stdout); err != nil {
				return err
			}
		}
	}

	errs := sfcgen.NewErrorList()
	for _, err := range failures {
		errs.Add(err)
	}
	if errs.HasErrors() {
		fmt.Fprintln(stderr, errs.Error())
		return fmt.Errorf("%d file(s) had errors", errs.Len())
	}
	log.Debug("%d file(s) ok", len(files))
	return nil
}

// compileAll compiles files concurrently. Compilation failures are
// returned per file, in input order; the error result is only set when
// ctx is cancelled.
func compileAll(ctx context.Context, files []string, opts sfc.Options, jobs int) ([]string, []error, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	outputs := make([]string, len(files))
	failures := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Compile("%s", file)
			out, err := sfc.CompileFile(file, opts)
			if err != nil {
				failures[i] = fileError(file, err)
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return outputs, failures, nil
}

// fileError makes sure the error names the file it came from.
func fileError(file string, err error) error {
	var serr *sfc.Error
	if errors.As(err, &serr) && serr.Pos.Line > 0 {
		serr.Pos.File = file
		return serr
	}
	return fmt.Errorf("%s: %w", file, err)
}

func emit(cfg *config.Config, file, out string, toStdout, header bool, stdout io.Writer) error {
	if toStdout {
		if header {
			fmt.Fprintf(stdout, "// %s\n", file)
		}
		_, err := io.WriteString(stdout, out)
		return err
	}

	path := cfg.OutputPath(file)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Debug("%s -> %s", file, path)
	return nil
}

// loadConfig reads the file at path, or ./sfc.yaml when path is empty.
// A missing default file means default settings.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load(".")
	if errors.Is(err, fs.ErrNotExist) {
		return config.New(), nil
	}
	return cfg, err
}
