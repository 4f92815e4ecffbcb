// Package repl evaluates pinego commands (add, has, rm, prefix, count, list...)
// against a [Store], either from strings, streams or an interactive terminal.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"fortio.org/log"
	"fortio.org/version"
)

const PROMPT = "pinego> "

type Options struct {
	Color bool // colorize results, for terminals.
	// Maximum number of words printed by list, 0 or less for unlimited.
	MaxList int
}

type command struct {
	args  string // usage of the arguments.
	help  string
	min   int
	max   int // -1 for unlimited.
	apply func(st Store, args []string, out io.Writer, options Options) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add":    {"word...", "insert words", 1, -1, add},
		"has":    {"word...", "check whether words are stored", 1, -1, has},
		"rm":     {"word...", "remove words", 1, -1, remove},
		"prefix": {"word", "length of the longest prefix of word present in the trie", 1, 1, prefix},
		"count":  {"[prefix]", "number of words starting with prefix", 0, 1, count},
		"list":   {"[prefix]", "list words starting with prefix, in order", 0, 1, list},
		"len":    {"", "number of words", 0, 0, length},
		"info":   {"", "describe the trie", 0, 0, info},
		"help":   {"", "this help", 0, 0, help},
	}
}

func colorize(options Options, color, s string) string {
	if !options.Color {
		return s
	}
	return color + s + log.ANSIColors.Reset
}

// EvalString runs the commands in what and returns their output and errors.
func EvalString(st Store, what string, options Options) (string, []error) {
	var out strings.Builder
	errs := EvalOne(st, what, &out, options)
	return out.String(), errs
}

// EvalAll runs every line of in.
func EvalAll(st Store, in io.Reader, out io.Writer, options Options) []error {
	var errs []error
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		errs = append(errs, EvalOne(st, scanner.Text(), out, options)...)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// EvalOne runs one line, which can hold several commands separated by `;`.
// Every command runs even if a previous one failed.
func EvalOne(st Store, line string, out io.Writer, options Options) []error {
	cmds, err := SplitCommands(line)
	if err != nil {
		return []error{err}
	}
	var errs []error
	for _, args := range cmds {
		if err := run(st, args, out, options); err != nil {
			fmt.Fprintln(out, colorize(options, log.ANSIColors.Red, err.Error()))
			errs = append(errs, err)
		}
	}
	return errs
}

func run(st Store, args []string, out io.Writer, options Options) error {
	name, args := args[0], args[1:]
	c, found := commands[name]
	if !found {
		return fmt.Errorf("unknown command %q, try help", name)
	}
	if len(args) < c.min || (c.max >= 0 && len(args) > c.max) {
		return fmt.Errorf("usage: %s %s", name, c.args)
	}
	log.LogVf("Running %s %q", name, args)
	return c.apply(st, args, out, options)
}

func add(st Store, args []string, out io.Writer, _ Options) error {
	var errs []error
	for _, w := range args {
		isNew, err := st.Add(w)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("can't add %q: %w", w, err))
		case isNew:
			fmt.Fprintf(out, "added %q\n", w)
		default:
			fmt.Fprintf(out, "exists %q\n", w)
		}
	}
	return errors.Join(errs...)
}

func has(st Store, args []string, out io.Writer, options Options) error {
	for _, w := range args {
		if st.Has(w) {
			fmt.Fprintf(out, "%q %s\n", w, colorize(options, log.ANSIColors.Green, "true"))
		} else {
			fmt.Fprintf(out, "%q %s\n", w, colorize(options, log.ANSIColors.Red, "false"))
		}
	}
	return nil
}

func remove(st Store, args []string, out io.Writer, _ Options) error {
	for _, w := range args {
		if st.Remove(w) {
			fmt.Fprintf(out, "removed %q\n", w)
		} else {
			fmt.Fprintf(out, "absent %q\n", w)
		}
	}
	return nil
}

func prefix(st Store, args []string, out io.Writer, _ Options) error {
	fmt.Fprintln(out, st.LongestPrefix(args[0]))
	return nil
}

func optionalPrefix(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func count(st Store, args []string, out io.Writer, _ Options) error {
	fmt.Fprintln(out, st.CountPrefix(optionalPrefix(args)))
	return nil
}

func list(st Store, args []string, out io.Writer, options Options) error {
	p := optionalPrefix(args)
	limit := options.MaxList
	if limit > 0 {
		limit++ // one more to know if there are more.
	}
	words := st.List(p, limit)
	more := 0
	if options.MaxList > 0 && len(words) > options.MaxList {
		words = words[:options.MaxList]
		more = st.CountPrefix(p) - options.MaxList
	}
	for _, w := range words {
		fmt.Fprintf(out, "%q\n", w)
	}
	if more > 0 {
		fmt.Fprintf(out, "... %d more\n", more)
	}
	return nil
}

func length(st Store, _ []string, out io.Writer, _ Options) error {
	fmt.Fprintln(out, st.Len())
	return nil
}

func info(st Store, _ []string, out io.Writer, _ Options) error {
	_, long, _ := version.FromBuildInfoPath("pinego.io/pinego")
	fmt.Fprintf(out, "%s (pinego %s)\n", st.Describe(), long)
	return nil
}

func help(_ Store, _ []string, out io.Writer, _ Options) error {
	for _, n := range slices.Sorted(maps.Keys(commands)) {
		c := commands[n]
		fmt.Fprintf(out, "%-16s %s\n", strings.TrimSpace(n+" "+c.args), c.help)
	}
	fmt.Fprintln(out, `Separate commands with ;, quote words with spaces, "" is the empty word.`)
	return nil
}
