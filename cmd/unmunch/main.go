// Command unmunch expands a hunspell-style dictionary into its full
// word list.
//
// Usage:
//
//	unmunch [-e|-b] AFFIX [DICTIONARY]
//
// Default mode expands every dictionary entry (unmunch). With -e, words
// are read from stdin and expanded; when a dictionary is given their
// flags are looked up, otherwise every rule is tried. With -b, words
// are read from stdin, their base words recovered through the
// dictionary and the expansions of those bases printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	unmunch "github.com/openlexica/unmunch"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("unmunch: ")

	expandMode := flag.Bool("e", false, "expand words from stdin using affix rules (with a dictionary, flags are looked up)")
	findBaseMode := flag.Bool("b", false, "find base words for inflected forms from stdin and expand them (requires a dictionary)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: unmunch [-e|-b] AFFIX [DICTIONARY]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}
	affixPath := args[0]

	u := unmunch.New()
	if err := u.LoadAffixFile(affixPath); err != nil {
		log.Fatalf("load affix file: %v", err)
	}

	haveDict := len(args) > 1
	if haveDict {
		if err := u.LoadDictionary(args[1]); err != nil {
			log.Fatalf("load dictionary: %v", err)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch {
	case *findBaseMode:
		if !haveDict {
			log.Fatal("a dictionary is required for -b mode")
		}
		if err := forEachStdinWord(func(word string) error {
			forms, err := u.FindBaseAndExpand(word)
			if err != nil {
				return err
			}
			return writeLines(out, forms)
		}); err != nil {
			log.Fatal(err)
		}

	case *expandMode:
		if err := forEachStdinWord(func(word string) error {
			var forms []string
			var err error
			if haveDict {
				forms, err = u.ExpandEntry(word)
			} else {
				forms, err = u.ExpandWord(word)
			}
			if err != nil {
				return err
			}
			return writeLines(out, forms)
		}); err != nil {
			log.Fatal(err)
		}

	default:
		if !haveDict {
			flag.Usage()
			os.Exit(2)
		}
		words, err := u.Unmunch()
		if err != nil {
			log.Fatalf("unmunch: %v", err)
		}
		if err := writeLines(out, words); err != nil {
			log.Fatal(err)
		}
	}
}

// forEachStdinWord invokes fn for every non-empty trimmed line of stdin.
func forEachStdinWord(fn func(word string) error) error {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		if err := fn(word); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeLines(out *bufio.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
