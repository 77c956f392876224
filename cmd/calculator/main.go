package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rednaxelam/calculator"
	"github.com/rednaxelam/calculator/session"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		nl, echo        bool
		depth           int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML file with initial slots and limits")
	flag.IntVar(&depth, "depth", 0, "maximum parenthesis nesting depth (default from config, else 256)")
	flag.BoolVar(&nl, "n", true, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "v", false, "print the tokens of each expression")
	flag.Parse()
	if depth < 0 {
		log.Fatalf("depth (%d) must not be negative", depth)
	}

	cfg := &session.Config{}
	if cfgname != "" {
		var err error
		cfg, err = session.LoadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
	}
	if depth > 0 {
		cfg.MaxDepth = depth
	}
	s, err := session.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	lines, err := readInput(inname, flag.NArg() == 0, nl)
	if err != nil {
		log.Fatal(err)
	}
	lines = append(lines, flag.Args()...)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if echo {
			fmt.Printf("%s : ", tokens(s, line))
		}
		r, err := s.Eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
}

// tokens formats the tokens of a line after slot substitution, or the error
// that prevents tokenizing it.
func tokens(s *session.Session, line string) string {
	src, err := s.Expand(line)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	l, err := calculator.Tokenize(src)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return l.String()
}

// readLines reads the input as one expression per line, or as a single
// expression if nl is false.
func readLines(r io.Reader, nl bool) ([]string, error) {
	if !nl {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// readInput reads lines from the named file, or from stdin if the name is
// "-" or if it is empty and std is true. If there is no input, the result is
// empty.
func readInput(inname string, std, nl bool) ([]string, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readLines(f, nl)
	case inname == "-", std:
		return readLines(os.Stdin, nl)
	}
	return nil, nil
}
