package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/js2py/internal/cli/output"
	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	NoWarnings bool // Hide warning diagnostics
}

// checkReport is the JSON shape of a check run.
type checkReport struct {
	Summary checkSummary `json:"summary"`
	Files   []checkFile  `json:"files"`
}

type checkSummary struct {
	Files    int `json:"files"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

type checkFile struct {
	Path        string            `json:"path"`
	Error       string            `json:"error,omitempty"`
	Diagnostics []checkDiagnostic `json:"diagnostics"`
}

type checkDiagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Snippet  string `json:"snippet,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report every construct that cannot be translated",
		Long: `Parse and check JavaScript files without writing any output.

Unlike translation, which stops at the first problem, check reports
every untranslatable construct plus warnings for lowerings that change
meaning. Directories are searched for the configured extensions.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the current directory
  js2py check

  # Check specific files
  js2py check src/app.js src/util.js

  # Output as JSON
  js2py check --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoWarnings, "no-warnings", false, "Only report errors")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	c := NewCommandContext(cmd)

	eng, err := c.NewEngine(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	results, err := eng.Check(cmd.Context(), paths)
	if err != nil {
		return err
	}

	report := buildCheckReport(results, opts)
	renderCheckReport(c.Renderer, report)

	if report.Summary.Errors > 0 {
		return fmt.Errorf("%d error(s) found", report.Summary.Errors)
	}
	return nil
}

func buildCheckReport(results []engine.FileDiagnostics, opts *CheckOptions) checkReport {
	report := checkReport{
		Summary: checkSummary{Files: len(results)},
		Files:   []checkFile{},
	}

	for _, res := range results {
		f := checkFile{Path: displayPath(res.Path), Diagnostics: []checkDiagnostic{}}

		if res.Err != nil {
			report.Summary.Errors++
			f.Error = res.Err.Error()
			var syn *jsparse.SyntaxError
			if errors.As(res.Err, &syn) {
				f.Diagnostics = append(f.Diagnostics, checkDiagnostic{
					Code:     "SYNTAX",
					Severity: translate.SeverityError.String(),
					Message:  syn.Msg,
					Line:     syn.Line,
					Column:   syn.Column,
				})
			}
		}

		for _, d := range res.Diagnostics {
			if opts.NoWarnings && d.Severity == translate.SeverityWarning {
				continue
			}
			if d.Severity == translate.SeverityError {
				report.Summary.Errors++
			} else {
				report.Summary.Warnings++
			}
			cd := checkDiagnostic{
				Code:     d.Code,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Snippet:  d.Snippet,
			}
			if res.File != nil {
				pos := res.File.Position(d.Span.Start)
				cd.Line, cd.Column = pos.Line, pos.Column
			}
			f.Diagnostics = append(f.Diagnostics, cd)
		}

		if f.Error != "" || len(f.Diagnostics) > 0 {
			report.Files = append(report.Files, f)
		}
	}

	return report
}

func renderCheckReport(r *output.Renderer, report checkReport) {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		_ = r.JSON(report)
		return
	case output.ModeMarkdown:
		renderCheckMarkdown(r, report)
	default:
		renderCheckText(r, report)
	}

	summary := fmt.Sprintf("%d file(s) checked, %d error(s), %d warning(s)",
		report.Summary.Files, report.Summary.Errors, report.Summary.Warnings)
	switch {
	case report.Summary.Errors > 0:
		r.Error(summary)
	case report.Summary.Warnings > 0:
		r.Warning(summary)
	default:
		r.Success(summary)
	}
}

func renderCheckText(r *output.Renderer, report checkReport) {
	if len(report.Files) == 0 {
		return
	}

	styles := r.Styles()
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Location", "Severity", "Code", "Message"})

	for _, f := range report.Files {
		if len(f.Diagnostics) == 0 {
			t.AppendRow(table.Row{f.Path, styles.Error.Render("error"), "-", f.Error})
			continue
		}
		for _, d := range f.Diagnostics {
			sev := styles.Warning.Render(d.Severity)
			if d.Severity == translate.SeverityError.String() {
				sev = styles.Error.Render(d.Severity)
			}
			loc := fmt.Sprintf("%s:%d:%d", f.Path, d.Line, d.Column)
			t.AppendRow(table.Row{loc, sev, d.Code, d.Message})
		}
	}

	t.Render()
}

func renderCheckMarkdown(r *output.Renderer, report checkReport) {
	r.Println(output.FormatHeader(1, "check results"))
	r.Println("")
	if len(report.Files) == 0 {
		return
	}

	for _, f := range report.Files {
		r.Println("## `" + f.Path + "`")
		r.Println("")
		if len(f.Diagnostics) == 0 {
			r.Println(output.FormatKeyValue("Error", f.Error))
			r.Println("")
			continue
		}
		r.Println(output.FormatTableRow("Line", "Column", "Severity", "Code", "Message"))
		r.Println(output.FormatTableSeparator(5))
		for _, d := range f.Diagnostics {
			r.Println(output.FormatTableRow(
				fmt.Sprint(d.Line), fmt.Sprint(d.Column), d.Severity, d.Code, d.Message))
		}
		r.Println("")
	}
}

// displayPath shortens path relative to the working directory when possible.
func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || filepath.IsAbs(rel) || len(rel) >= len(path) {
		return path
	}
	return rel
}
