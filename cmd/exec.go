package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/itsmostafa/runcode/internal/repl"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [file]",
	Short: "Execute a JavaScript file against a fresh namespace",
	Long: `Execute a JavaScript file the same way POST /run_code does and print the
result. Reads from stdin when no file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		if len(code) == 0 {
			return fmt.Errorf("no code provided")
		}

		ns, err := repl.NewNamespace(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), repl.Execute(ns, string(code)))
		return nil
	},
}

func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		code, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return code, nil
	}

	code, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return code, nil
}

func init() {
	rootCmd.AddCommand(execCmd)
}
