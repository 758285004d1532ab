package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pslang/internal/interp"
	"github.com/cwbudde/go-pslang/internal/lexer"
	"github.com/cwbudde/go-pslang/internal/parser"
)

var (
	lexicalMode bool
	dump        bool
	trace       bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file, or from stdin if no file is given",
	Long: `Execute a program.

Examples:
  # Run a script file
  pslang run script.ps

  # Run from stdin
  echo '3 4 add =' | pslang run

  # Run with lexical scoping instead of the default dynamic scoping
  pslang run --lexical script.ps

  # Dump the parsed code list before executing it
  pslang run --dump script.ps`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&lexicalMode, "lexical", "l", false, "use lexical scoping instead of dynamic scoping")
	runCmd.Flags().BoolVar(&dump, "dump", false, "dump the parsed code list before executing it")
	runCmd.Flags().BoolVar(&trace, "trace", false, "log each resolved name and builtin invocation")
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if trace {
		log.SetLevel(logrus.TraceLevel)
	}

	sessionLog := log.WithField("file", filename)
	sessionLog.Debug("source loaded")

	mode := interp.Dynamic
	if lexicalMode {
		mode = interp.Lexical
	}
	sessionLog.WithField("scoping", scopingName(mode)).Debug("scoping mode selected")

	if dump {
		tokens := lexer.Tokenize(source)
		code := parser.New(tokens).Parse()
		fmt.Fprintln(os.Stderr, "Parsed code:")
		fmt.Fprintln(os.Stderr, repr.String(code, repr.Indent("  ")))
	}

	interpreter := interp.New(os.Stdout,
		interp.WithScopingMode(mode),
		interp.WithLogger(sessionLog),
		interp.WithTrace(trace),
	)

	if err := interpreter.Run(source); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

func readSource(args []string) (source, filename string, err error) {
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

func scopingName(mode interp.ScopingMode) string {
	if mode == interp.Lexical {
		return "lexical"
	}
	return "dynamic"
}
