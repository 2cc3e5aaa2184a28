// pairgen generates pairwise (2-way) covering test suites.
//
// Usage:
//
//	pairgen --params params.yaml
//	cat params.yaml | pairgen --format json
//	pairgen edit
//
// Input is a YAML parameter file (see internal/paramfile). The plain
// invocation prints the generated suite with per-test new-pair counts;
// `pairgen edit` opens an interactive parameter editor.
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode table (default when TTY)
//	llm       — terse tab-separated text (default when piped)
//	json      — structured JSON for automation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/pairgen/internal/editor"
	"github.com/dkoosis/pairgen/internal/paramfile"
	"github.com/dkoosis/pairgen/internal/version"
	"github.com/dkoosis/pairgen/pkg/mapper"
	"github.com/dkoosis/pairgen/pkg/pairwise"
	"github.com/dkoosis/pairgen/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 && args[0] == "edit" {
		return runEdit(args[1:], stderr)
	}

	fs := flag.NewFlagSet("pairgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	paramsFlag := fs.String("params", "", "Parameter file (YAML); reads stdin when omitted and piped")
	formatFlag := fs.String("format", "auto", "Output format: auto, terminal, llm, json")
	themeFlag := fs.String("theme", "default", "Theme: default, orca, mono")
	pairsFlag := fs.Bool("pairs", false, "Also list every required pair and its first covering test")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "pairgen %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	validFormats := map[string]bool{"auto": true, "terminal": true, "llm": true, "json": true}
	if !validFormats[*formatFlag] {
		fmt.Fprintf(stderr, "pairgen: unknown format %q (expected auto, terminal, llm, json)\n", *formatFlag)
		return 2
	}

	params, code := loadParams(*paramsFlag, stdin, stderr)
	if code >= 0 {
		return code
	}

	suite, required, err := pairwise.Generate(params)
	if err != nil {
		if errors.Is(err, pairwise.ErrPrecondition) {
			fmt.Fprintf(stderr, "pairgen: %v\n", err)
			return 2
		}
		// Internal consistency failure: an engine defect, not bad input.
		fmt.Fprintf(stderr, "pairgen: could not generate a valid test suite: %v\n", err)
		return 1
	}

	cov, err := pairwise.AnalyzeCoverage(suite, required, params)
	if err != nil {
		fmt.Fprintf(stderr, "pairgen: %v\n", err)
		return 1
	}

	patterns := mapper.FromGeneration(params, suite, required, cov)
	if *pairsFlag {
		patterns = append(patterns, mapper.PairList(params, suite))
	}

	output := selectRenderer(resolveFormat(*formatFlag, stdout), *themeFlag, stdout).Render(patterns)
	fmt.Fprint(stdout, output)
	return 0
}

// loadParams reads the parameter set from --params or piped stdin.
// Returns (params, -1) on success; (nil, exitCode) on error.
func loadParams(path string, stdin io.Reader, stderr io.Writer) (pairwise.Parameters, int) {
	if path != "" {
		params, err := paramfile.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "pairgen: %v\n", err)
			return nil, 2
		}
		return params, -1
	}
	if isTTYReader(stdin) {
		fmt.Fprintf(stderr, "pairgen: no input (pass --params <file>, pipe YAML on stdin, or run 'pairgen edit')\n")
		return nil, 2
	}
	params, err := paramfile.Load(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "pairgen: %v\n", err)
		return nil, 2
	}
	return params, -1
}

func runEdit(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("pairgen edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	paramsFlag := fs.String("params", "", "Parameter file (YAML) to seed the editor")
	themeFlag := fs.String("theme", "default", "Theme: default, orca, mono")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	params := paramfile.Example()
	if *paramsFlag != "" {
		loaded, err := paramfile.LoadFile(*paramsFlag)
		if err != nil {
			fmt.Fprintf(stderr, "pairgen: %v\n", err)
			return 2
		}
		params = loaded
	}

	theme := render.ThemeByName(*themeFlag)
	if os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	if _, err := editor.Run(params, theme); err != nil {
		fmt.Fprintf(stderr, "pairgen: editor: %v\n", err)
		return 1
	}
	return 0
}

// isTTYReader reports whether r is a terminal.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func selectRenderer(mode, themeName string, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(themeName)
		// Honor NO_COLOR
		if os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		width := 80
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return "terminal"
		}
	}
	return "llm"
}
