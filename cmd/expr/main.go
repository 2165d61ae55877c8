// Command expr evaluates arithmetic and logical expressions from the
// command line, a file, or standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/loncus/expressions/ast"
	"github.com/loncus/expressions/config"
	"github.com/loncus/expressions/eval"
	"github.com/loncus/expressions/tokenizer"
)

type givenFlag struct {
	pairs [][2]string
}

func (g *givenFlag) String() string { return "" }

func (g *givenFlag) Set(s string) error {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	g.pairs = append(g.pairs, [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		inname string
		given  givenFlag
		verb   string
		echo   bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no expression args given)")
	flag.Var(&given, "given", "name=value variable definition (any number of times)")
	flag.StringVar(&verb, "fmt", "%v", "Printf verb used to format each result")
	flag.BoolVar(&echo, "echo", false, "print the parsed tree before the result")
	flag.Parse()
	verb += "\n"

	cfg := config.DefaultConfiguration()
	accessor := cfg.NewDataAccessor()
	for _, pair := range given.pairs {
		toks, err := tokenizer.New(pair[1], cfg).Parse()
		if err != nil {
			logger.Error("parsing variable value", "name", pair[0], "error", err)
			os.Exit(1)
		}
		tree, err := ast.Build(toks, cfg)
		if err != nil {
			logger.Error("building variable value", "name", pair[0], "error", err)
			os.Exit(1)
		}
		v, err := eval.Evaluate(tree, cfg, accessor)
		if err != nil {
			logger.Error("evaluating variable value", "name", pair[0], "error", err)
			os.Exit(1)
		}
		accessor.Set(pair[0], v)
	}

	var exprs []string
	if flag.NArg() > 0 {
		exprs = flag.Args()
	} else {
		src, err := inputSource(inname)
		if err != nil {
			logger.Error("opening input", "error", err)
			os.Exit(1)
		}
		defer src.Close()
		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			exprs = append(exprs, line)
		}
		if err := scanner.Err(); err != nil {
			logger.Error("reading input", "error", err)
			os.Exit(1)
		}
	}

	failed := false
	for _, expr := range exprs {
		toks, err := tokenizer.New(expr, cfg).Parse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", expr, err)
			failed = true
			continue
		}
		tree, err := ast.Build(toks, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", expr, err)
			failed = true
			continue
		}
		if echo {
			fmt.Printf("%s => %s => ", expr, tree)
		}
		result, err := eval.Evaluate(tree, cfg, accessor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", expr, err)
			failed = true
			continue
		}
		fmt.Printf(verb, result)
	}
	if failed {
		os.Exit(1)
	}
}

func inputSource(name string) (*os.File, error) {
	switch name {
	case "", "-":
		return os.Stdin, nil
	default:
		return os.Open(name)
	}
}
