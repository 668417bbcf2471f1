package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cherry-lang/cherry/core/grammar"
	"github.com/cherry-lang/cherry/runtime/lexer"
	"github.com/cherry-lang/cherry/runtime/parser"
)

const (
	exitSuccess    = 0
	exitUsage      = 1
	exitIO         = 2
	exitLexError   = 3
	exitParseError = 4
)

func main() {
	var (
		file  string
		watch bool
	)

	rootCmd := &cobra.Command{
		Use:   "cherry",
		Short: "Front-end tooling for cherry source files",
	}
	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "-", "Source file ('-' for stdin)")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Re-run when the source file changes")

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Dump the token stream of a source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaybeWatched(file, watch, dumpTokens)
		},
	}

	astCmd := &cobra.Command{
		Use:   "ast",
		Short: "Parse a source file and pretty-print its document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaybeWatched(file, watch, dumpAST)
		},
	}

	var format string
	grammarCmd := &cobra.Command{
		Use:   "grammar",
		Short: "Dump FIRST/FOLLOW tables of the document grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpGrammar(format)
		},
	}
	grammarCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or cbor")

	rootCmd.AddCommand(tokensCmd, astCmd, grammarCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
}

// runMaybeWatched runs the action once, or keeps re-running it on every
// write to the source file when watching. An unreadable source, a lex error
// or a parse error exits the process with its exit code, in watch mode too.
func runMaybeWatched(file string, watch bool, action func(path, source string) error) error {
	run := func() error {
		source, path, err := readSource(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading source: %v\n", err)
			os.Exit(exitIO)
		}
		return action(path, source)
	}
	if !watch {
		return run()
	}
	if file == "-" {
		return fmt.Errorf("--watch requires a file, not stdin")
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(file); err != nil {
		return err
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fmt.Printf("--- %s changed ---\n", file)
				if err := run(); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

// readSource resolves the three input modes: explicit stdin with -f -,
// piped input, or a named file.
func readSource(file string) (source, path string, err error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", err
	}
	return string(data), file, nil
}

func dumpTokens(path, source string) error {
	analyzer := lexer.NewAnalyzer()
	st := lexer.NewState(source)
	for {
		tkn, err := analyzer.Tokenize(st)
		if err != lexer.Success {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n",
				path, st.Line+1, st.Column+1, err.Message())
			os.Exit(exitLexError)
		}
		fmt.Printf("%-14s %q line=%d col=%d\n",
			tkn.Type, tkn.Lexeme, tkn.Line, tkn.Column)
		if tkn.Type == lexer.EOS {
			return nil
		}
	}
}

func dumpAST(path, source string) error {
	ctx := parser.NewState(path, source)
	doc, err := parser.ParseDocument(ctx)
	if err != parser.Success {
		diag := parser.NewDiagnostic(err, ctx)
		fmt.Fprintln(os.Stderr, diag.Error())
		os.Exit(exitParseError)
	}
	fmt.Print(doc.String())
	return nil
}

func dumpGrammar(format string) error {
	g := parser.DocumentGrammar()
	switch format {
	case "text":
		printSets("FIRST", g.FirstSets())
		printSets("FOLLOW", g.FollowSets())
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g.Export())
	case "cbor":
		data, err := g.Export().CBOR()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printSets(label string, sets map[grammar.Symbol]grammar.SymbolSet) {
	fmt.Printf("%s:\n", label)
	entries := make([]grammar.Symbol, 0, len(sets))
	for sym := range sets {
		entries = append(entries, sym)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })
	for _, sym := range entries {
		fmt.Printf("  %-10s {", sym)
		for i, member := range sets[sym].Sorted() {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(member)
		}
		fmt.Println("}")
	}
}
