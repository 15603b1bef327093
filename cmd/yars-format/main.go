// Command yars-format rewrites YAML files into canonical form: mapping
// keys sorted, layout normalized, quoting made deterministic.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/easel/yars"
	"github.com/easel/yars/libdiff"
)

const version = "0.1.0"

type options struct {
	check       bool
	verbose     bool
	diff        bool
	jobs        uint
	colorMode   string
	completions string

	exitCode int
}

func newOptions() *options {
	return &options{colorMode: "auto"}
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yars-format [flags] FILE...",
		Short:         "Canonicalize YAML files",
		Long:          "yars-format parses each FILE, sorts every mapping by key, and rewrites the file in a fixed canonical layout. Semantically equal documents always format to identical bytes.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&o.check, "check", false, "report files that would change without writing them")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "print a line per file")
	cmd.Flags().BoolVar(&o.diff, "diff", false, "print a line diff per changing file (implies --check)")
	cmd.Flags().UintVar(&o.jobs, "jobs", 0, "maximum concurrent files (0 = one per CPU)")
	cmd.Flags().StringVar(&o.colorMode, "color", o.colorMode, "colorize diffs (auto|on|off)")
	cmd.Flags().StringVar(&o.completions, "generate-completions", "", "write shell completions to stdout (bash|zsh|fish|powershell)")
	return cmd
}

func (o *options) run(cmd *cobra.Command, paths []string) error {
	if o.completions != "" {
		return o.generateCompletions(cmd)
	}
	if len(paths) == 0 {
		return errors.New("at least one FILE is required")
	}
	if err := applyConfig(cmd, o); err != nil {
		return err
	}
	if err := o.applyColorMode(); err != nil {
		return err
	}
	checkOnly := o.check || o.diff

	results := yars.FormatFiles(cmd.Context(), paths, yars.Options{
		CheckOnly: checkOnly,
		Jobs:      o.jobs,
	})

	nerr, changed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, errorLine(res))
			nerr++
			continue
		}
		if res.Changed {
			changed++
		}
		if o.verbose {
			fmt.Println(verboseLine(res, checkOnly))
		}
		if o.diff && res.Changed {
			o.printDiff(res.Path)
		}
	}

	success := len(results) - nerr
	if checkOnly {
		fmt.Printf("Checked %d file(s); %d would change.\n", success, changed)
	} else {
		unchanged := success - changed
		if unchanged < 0 {
			unchanged = 0
		}
		fmt.Printf("Formatted %d file(s); %d updated, %d unchanged.\n", success, changed, unchanged)
	}
	if nerr > 0 {
		fmt.Fprintf(os.Stderr, "Encountered %d error(s).\n", nerr)
		o.exitCode = 2
	} else if checkOnly && changed > 0 {
		o.exitCode = 1
	}
	return nil
}

func verboseLine(res yars.FileResult, checkOnly bool) string {
	switch {
	case !res.Changed:
		return fmt.Sprintf("%s - already formatted", res.Path)
	case checkOnly:
		return fmt.Sprintf("%s - would reformat (%d differing line(s))", res.Path, res.LinesChanged)
	default:
		return fmt.Sprintf("%s - reformatted (%d line(s) changed)", res.Path, res.LinesChanged)
	}
}

// errorLine prefixes the path when the underlying error does not carry
// it already.
func errorLine(res yars.FileResult) string {
	if errors.Is(res.Err, yars.ErrFormat) || errors.Is(res.Err, yars.ErrTopLevelList) {
		return fmt.Sprintf("Error: %s: %v", res.Path, res.Err)
	}
	return fmt.Sprintf("Error: %v", res.Err)
}

// printDiff re-renders path to show what check mode found. The file has
// not been modified, so the original text is still on disk.
func (o *options) printDiff(path string) {
	d, err := os.ReadFile(path)
	if err != nil {
		return
	}
	formatted, err := yars.FormatString(string(d))
	if err != nil {
		return
	}
	fmt.Printf("--- %s\n", path)
	fmt.Print(libdiff.Unified(string(d), formatted))
}

func (o *options) applyColorMode() error {
	switch o.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		fd := os.Stdout.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	default:
		return fmt.Errorf("invalid --color mode %q (auto|on|off)", o.colorMode)
	}
	return nil
}

func (o *options) generateCompletions(cmd *cobra.Command) error {
	root := cmd.Root()
	switch o.completions {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unknown shell %q (bash|zsh|fish|powershell)", o.completions)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o := newOptions()
	cmd := newRootCmd(o)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(o.exitCode)
}
