// Pinego loads words into a trie and answers membership, prefix and listing queries.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"pinego.io/pinego/repl"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	Mode     string
	Length   int
	Alphabet string
}

var config = Config{Mode: repl.ModeRunes}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("PINEGO_", res, true)
	fmt.Fprintln(w, "# Pinego environment variables:")
	fmt.Fprint(w, str)
}

func Main() int {
	commandFlag := flag.String("c", "", "`commands` to run (separated by ; or newlines) instead of interactive mode, - to read them from stdin")
	listFlag := flag.Bool("list", false, "print all the words, one per line, after loading")
	maxList := flag.Int("max-list", 0, "max number of words printed by the list command, 0 for unlimited")
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("PINEGO_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	mode := flag.String("mode", config.Mode, "symbol `mode` of the dynamic trie: bytes, runes or graphemes")
	length := flag.Int("length", config.Length, "word `length` of a static trie, 0 for a dynamic trie")
	alphabet := flag.String("alphabet", config.Alphabet, "`symbols` of the static trie (with -length)")
	cli.ArgsHelp = "word files to load (one word per line), `-` for stdin"
	cli.MaxArgs = -1
	cli.Main()
	st, err := newStore(*mode, *length, *alphabet)
	if err != nil {
		return log.FErrf("Error creating trie: %v", err)
	}
	failures := 0
	for _, file := range flag.Args() {
		failures += loadFile(st, file)
	}
	if len(flag.Args()) > 0 {
		log.Infof("Loaded %d file(s): %s", len(flag.Args()), st.Describe())
	}
	if *listFlag {
		for _, w := range st.List("", 0) {
			fmt.Println(w)
		}
	}
	options := repl.Options{MaxList: *maxList}
	if *commandFlag != "" {
		var errs []error
		if *commandFlag == "-" {
			log.Infof("Running commands from stdin")
			errs = repl.EvalAll(st, os.Stdin, os.Stdout, options)
		} else {
			var res string
			res, errs = repl.EvalString(st, *commandFlag, options)
			fmt.Print(res)
		}
		if len(errs) > 0 {
			log.Errf("Errors: %v", errs)
		}
		return failures + len(errs)
	}
	if len(flag.Args()) == 0 && !*listFlag {
		options.Color = log.Colors.Reset != ""
		return repl.Interactive(st, options)
	}
	return failures
}

func newStore(mode string, length int, alphabet string) (repl.Store, error) {
	if length == 0 {
		if alphabet != "" {
			return nil, fmt.Errorf("-alphabet %q requires -length", alphabet)
		}
		return repl.NewDynamicStore(mode)
	}
	return repl.NewStaticStore(length, alphabet)
}

// loadFile adds every non blank line of file to the store and returns the
// number of words that couldn't be added.
func loadFile(st repl.Store, file string) int {
	in := os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			log.Errf("%v", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	failures, added, lineNum := 0, 0, 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		w := strings.TrimRight(scanner.Text(), "\r")
		if w == "" {
			continue
		}
		isNew, err := st.Add(w)
		if err != nil {
			log.Errf("%s:%d: %v", file, lineNum, err)
			failures++
			continue
		}
		if isNew {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errf("Error reading %s: %v", file, err)
		failures++
	}
	log.LogVf("Read %d lines from %s, %d new words", lineNum, file, added)
	return failures
}
