package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"loom/internal/ast"
	"loom/internal/emit"
	"loom/internal/interchange"
	"loom/internal/lexer"
	"loom/internal/parser"
	"loom/internal/project"
	"loom/internal/source"
	"loom/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [path...]",
	Short: "Parse and emit one or more loom source files to WebAssembly text",
	Long: "Build parses and emits .lm files to .wat next to the source (or to -o). " +
		"With no paths, it resolves loom.toml's [package] entry in the current directory tree.",
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output .wat path (only valid with exactly one input file)")
	buildCmd.Flags().Bool("assemble", false, "invoke wat2wasm on each emitted .wat file")
	buildCmd.Flags().Bool("no-ui", false, "disable the progress UI even on a terminal")
	buildCmd.Flags().Bool("emit-module", false, "also write a msgpack-encoded module payload (.wat.mp) next to each .wat file")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	assemble, err := cmd.Flags().GetBool("assemble")
	if err != nil {
		return err
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return err
	}
	emitModule, err := cmd.Flags().GetBool("emit-module")
	if err != nil {
		return err
	}

	files, exportName, err := resolveBuildInputs(args)
	if err != nil {
		return err
	}
	if output != "" && len(files) != 1 {
		return fmt.Errorf("-o/--output requires exactly one input file, got %d", len(files))
	}

	events := make(chan ui.Event, 256)
	type outcome struct {
		results []buildResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)
	go func() {
		results, err := buildFiles(cmd.Context(), files, exportName, events)
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	showUI := !noUI && isTerminal(os.Stdout) && len(files) > 0
	if showUI {
		model := ui.NewProgressModel("building", files, events)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
		if _, uiErr := program.Run(); uiErr != nil {
			fmt.Fprintf(os.Stderr, "ui: %v\n", uiErr)
		}
	} else {
		for range events {
		}
	}

	out := <-outcomeCh
	results, buildErr := out.results, out.err

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			continue
		}
		outPath := output
		if outPath == "" {
			outPath = strings.TrimSuffix(r.path, filepath.Ext(r.path)) + ".wat"
		}
		if err := os.WriteFile(outPath, []byte(r.mod.Text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		for _, d := range r.mod.Diags.Items() {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", r.path, d.Pos, d.Message)
		}
		if emitModule {
			data, err := interchange.EncodeModule(interchange.Module{
				Text:        r.mod.Text,
				ExportName:  exportName,
				Diagnostics: r.mod.Diags.Items(),
			})
			if err != nil {
				return fmt.Errorf("failed to encode module for %s: %w", r.path, err)
			}
			if err := os.WriteFile(outPath+".mp", data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s.mp: %w", outPath, err)
			}
		}
		if assemble {
			if err := runWat2Wasm(outPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
			}
		}
	}
	if buildErr != nil {
		return buildErr
	}
	return nil
}

// resolveBuildInputs decides which files to build and which export name
// to use. Explicit paths on the command line skip the manifest and use
// "main" as the export name for each; with no paths, loom.toml's
// [package] entry/export drive a single-file build.
func resolveBuildInputs(args []string) (files []string, exportName string, err error) {
	if len(args) > 0 {
		return args, "main", nil
	}
	manifest, manifestPath, ok, err := project.Load(".")
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("no input files given and no %s found", project.ManifestFileName)
	}
	return []string{manifest.EntryPath(manifestPath)}, manifest.Export, nil
}

type buildResult struct {
	path string
	mod  *emit.Module
	err  error
}

// buildFiles tokenizes and parses each file concurrently (bounded by
// GOMAXPROCS via errgroup, grounded on the teacher's
// internal/driver/parallel.go), then emits each sequentially: a
// codegen.Context is scoped to a single module's lifetime, so emission
// itself is never parallelized across files.
func buildFiles(ctx context.Context, files []string, exportName string, events chan<- ui.Event) ([]buildResult, error) {
	parsed := make([]struct {
		prog *ast.Program
		b    *ast.Builder
		err  error
	}, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			emitEvent(events, path, ui.StatusWorking)
			file, err := source.Load(path)
			if err != nil {
				parsed[i].err = fmt.Errorf("failed to read %s: %w", path, err)
				return nil
			}
			b := ast.NewBuilder()
			lx := lexer.New(file)
			prog, perr := parser.Parse(lx, b)
			parsed[i].b, parsed[i].prog, parsed[i].err = b, prog, perr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]buildResult, len(files))
	for i, path := range files {
		results[i].path = path
		if parsed[i].err != nil {
			results[i].err = parsed[i].err
			emitEvent(events, path, ui.StatusError)
			continue
		}
		mod, err := emit.EmitModule(parsed[i].b, parsed[i].prog, exportName)
		if err != nil {
			results[i].err = err
			emitEvent(events, path, ui.StatusError)
			continue
		}
		results[i].mod = mod
		emitEvent(events, path, ui.StatusDone)
	}
	return results, nil
}

func emitEvent(events chan<- ui.Event, file string, status ui.Status) {
	select {
	case events <- ui.Event{File: file, Status: status}:
	default:
	}
}

// runWat2Wasm invokes the external wat2wasm assembler if present on
// PATH. The assembler is an external collaborator, never vendored or
// reimplemented.
func runWat2Wasm(watPath string) error {
	bin, err := exec.LookPath("wat2wasm")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: wat2wasm not found on PATH, skipping assembly of %s\n", watPath)
		return nil
	}
	out := strings.TrimSuffix(watPath, filepath.Ext(watPath)) + ".wasm"
	cmd := exec.Command(bin, watPath, "-o", out)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
