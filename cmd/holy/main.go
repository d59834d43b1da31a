package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesperkha/holy/holy"
	"github.com/jesperkha/holy/holy/ast"
	"github.com/jesperkha/holy/holy/config"
	"github.com/jesperkha/holy/holy/types"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
)

const (
	promptMain = "holy> "
	promptCont = "....> "
)

var (
	configPath = flag.String("config", config.FileName, "path to config file")
	printAst   = flag.Bool("ast", false, "print the parsed program")
	printScope = flag.Bool("scopes", false, "print the scope tree after checking")
	verbose    = flag.Bool("v", false, "log the loaded config and a summary per file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("holy: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: holy [flags] [file ...]\n\nWith no files an interactive checker is started.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("config: %# v", pretty.Formatter(cfg))
	}

	if flag.NArg() == 0 {
		os.Exit(repl(cfg))
	}

	failed := false
	for _, filename := range flag.Args() {
		if !cfg.Accepts(filename) {
			log.Printf("%s: not a source file, expected one of %s", filename, strings.Join(cfg.Extensions, ", "))
			failed = true
			continue
		}

		if err := checkFile(filename, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// An explicit -config path must exist. The default file is optional.
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	if explicit {
		return config.Load(*configPath)
	}
	return config.LoadOrDefault(*configPath)
}

func checkFile(filename string, cfg *config.Config) error {
	if *printAst {
		tree, err := holy.ParseFile(filename, nil)
		if err != nil {
			return err
		}
		ast.NewDebugVisitor(tree).Print()
	}

	res, err := holy.Check(filename, nil, cfg)
	if res != nil && *printScope {
		dumpScope(res.Table.Global(), 0)
	}
	if res != nil && *verbose {
		log.Printf("%s: %d diagnostics, %d expressions typed", filename, len(res.Diagnostics), len(res.Types))
	}
	return err
}

func dumpScope(s *types.Scope, indent int) {
	pad := strings.Repeat("    ", indent)
	fmt.Printf("%s%s", pad, s.Kind)
	if s.HasReturn() {
		fmt.Print(" (returns)")
	}
	fmt.Println()

	for _, sym := range s.Symbols() {
		fmt.Printf("%s  %s: %s (line %d)\n", pad, sym.Name, sym.Type, sym.Line)
	}
	for _, child := range s.Children() {
		dumpScope(child, indent+1)
	}
}

func repl(cfg *config.Config) int {
	fmt.Println("HolyScript checker. Type :scope to list bindings, :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, cfg.History)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	session := holy.NewSession(cfg)
	for {
		src, ok := readInput(ln, session)
		if !ok {
			fmt.Println()
			return 0
		}

		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}

		if strings.HasPrefix(src, ":") {
			switch strings.ToLower(src) {
			case ":quit":
				return 0
			case ":scope":
				for _, sym := range session.Globals() {
					fmt.Printf("%s: %s\n", sym.Name, sym.Type)
				}
			default:
				fmt.Println("unknown command, expected :scope or :quit")
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if _, err := session.Check(src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println("ok")
	}
}

// Satisfied by *liner.State.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// Reads lines until the input parses or fails for a reason other than
// running out of input.
func readInput(ln prompter, session *holy.Session) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			log.Printf("prompt: %v", err)
			return "", false
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !session.Incomplete(src) {
			return src, true
		}
	}
}
