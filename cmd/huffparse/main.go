// Command huffparse exercises the parser as a library: it reads a
// pre-tokenized JSON token stream (the lexer is out of this module's
// scope) and prints a summary of the resulting Contract.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/huff-lang/huffparser/cmd/huffparse/internal/tokenfile"
	"github.com/huff-lang/huffparser/parser"
	"github.com/spf13/cobra"
)

// Build-time variables, settable via ldflags.
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

var (
	basePath  string
	disableRW bool
	debug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huffparse <tokens.json>",
	Short: "Parse a pre-tokenized Huff token stream into a Contract",
	Long: `huffparse reads a JSON-encoded token stream and runs it through the
Huff parser, printing a summary of the resulting Contract: function
selectors, constant names, macro names, and table sizes.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("huffparse %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&basePath, "base", "", "base path for resolving #include paths")
	rootCmd.PersistentFlags().BoolVar(&disableRW, "no-rewrite", false, "disable the contracts/contracts import path rewrite")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable HUFF_PARSER_DEBUG logging")
	rootCmd.AddCommand(versionCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if debug {
		os.Setenv("HUFF_PARSER_DEBUG", "1")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading token file: %w", err)
	}

	var records []tokenfile.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decoding token file: %w", err)
	}

	tokens, err := tokenfile.ToTokens(records)
	if err != nil {
		return fmt.Errorf("converting tokens: %w", err)
	}

	var opts []parser.Option
	if basePath != "" {
		opts = append(opts, parser.WithBase(basePath))
	}
	if disableRW {
		opts = append(opts, parser.WithoutImportRewrite())
	}

	contract, perr := parser.New(tokens, opts...).Parse()
	if perr != nil {
		return fmt.Errorf("parse error: %s", perr.Error())
	}

	fmt.Printf("imports:   %d\n", len(contract.Imports))
	fmt.Printf("functions: %d\n", len(contract.Functions))
	for _, fn := range contract.Functions {
		fmt.Printf("  %s -> %x\n", fn.Name, fn.Signature)
	}
	fmt.Printf("events:    %d\n", len(contract.Events))
	fmt.Printf("constants: %d\n", len(contract.Constants))
	for _, c := range contract.Constants {
		fmt.Printf("  %s\n", c.Name)
	}
	fmt.Printf("macros:    %d\n", len(contract.Macros))
	for _, m := range contract.Macros {
		fmt.Printf("  %s\n", m.Name)
	}
	fmt.Printf("tables:    %d\n", len(contract.Tables))
	for _, t := range contract.Tables {
		fmt.Printf("  %s (%s) size=%x\n", t.Name, t.Kind, t.SizeBytes32[28:])
	}

	return nil
}
