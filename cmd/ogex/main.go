// Command ogex is the CLI collaborator for the Ogex engine: it exposes
// test/find/match/convert subcommands over the compiled pattern engine.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ogex/ogex"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("ogex", pflag.ContinueOnError)
	help := flags.BoolP("help", "h", false, "show usage")
	flags.Usage = func() { printUsage() }
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *help {
		printUsage()
		return 0
	}

	rest := flags.Args()
	if len(rest) == 0 {
		printUsage()
		return 2
	}

	switch rest[0] {
	case "test":
		return cmdTest(rest[1:])
	case "find":
		return cmdFind(rest[1:])
	case "match":
		return cmdMatch(rest[1:])
	case "convert":
		return cmdConvert(rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "ogex: unknown subcommand %q\n", rest[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  ogex test <pattern> <subject>     exit 0 if subject matches, 1 otherwise
  ogex find <pattern> <subject>     print each match on its own line
  ogex match <pattern> <subject>    exit code only, no output
  ogex convert <pattern>            translate to (?<name>...) / \k<name> syntax`)
}

func compile(pattern string) (*ogex.Regexp, int) {
	re, err := ogex.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ogex: %s\n", err)
		return nil, 2
	}
	return re, 0
}

func cmdTest(args []string) int {
	if len(args) != 2 {
		printUsage()
		return 2
	}
	re, code := compile(args[0])
	if re == nil {
		return code
	}
	if re.IsMatch(args[1]) {
		return 0
	}
	return 1
}

func cmdMatch(args []string) int {
	return cmdTest(args)
}

func cmdFind(args []string) int {
	if len(args) != 2 {
		printUsage()
		return 2
	}
	re, code := compile(args[0])
	if re == nil {
		return code
	}
	matches := re.FindAll(args[1])
	if len(matches) == 0 {
		return 1
	}
	for _, m := range matches {
		fmt.Println(m.String())
	}
	return 0
}

func cmdConvert(args []string) int {
	if len(args) != 1 {
		printUsage()
		return 2
	}
	out, err := convertPattern(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ogex: %s\n", err)
		return 2
	}
	fmt.Println(out)
	return 0
}

// convertPattern rewrites Ogex's `(name:...)` groups to `(?<name>...)` and
// `\g{name}` backreferences to `\k<name>`, the conventional-engine spelling.
// Compiles the pattern first so invalid input is rejected with the same
// diagnostics as every other subcommand.
func convertPattern(pattern string) (string, error) {
	if _, err := ogex.Compile(pattern); err != nil {
		return "", err
	}

	src := []rune(pattern)
	var out strings.Builder
	inClass := false
	for i := 0; i < len(src); {
		c := src[i]

		if c == '\\' && i+1 < len(src) {
			if src[i+1] == 'g' && !inClass {
				if name, consumed, ok := tryNamedBackref(src, i+2); ok {
					out.WriteString(`\k<`)
					out.WriteString(name)
					out.WriteString(">")
					i = consumed
					continue
				}
			}
			// Any other escape (including \( and \]) is copied as a pair.
			out.WriteRune(c)
			out.WriteRune(src[i+1])
			i += 2
			continue
		}

		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		}

		if c == '(' && !inClass {
			if name, consumed, ok := tryNamedGroup(src, i+1); ok {
				out.WriteString("(?<")
				out.WriteString(name)
				out.WriteString(">")
				i = consumed
				continue
			}
		}

		out.WriteRune(c)
		i++
	}
	return out.String(), nil
}

func tryNamedGroup(src []rune, pos int) (string, int, bool) {
	start := pos
	if pos >= len(src) || !(isAlpha(src[pos]) || src[pos] == '_') {
		return "", 0, false
	}
	pos++
	for pos < len(src) && (isAlnum(src[pos]) || src[pos] == '_') {
		pos++
	}
	if pos >= len(src) || src[pos] != ':' {
		return "", 0, false
	}
	return string(src[start:pos]), pos + 1, true
}

func tryNamedBackref(src []rune, pos int) (string, int, bool) {
	if pos >= len(src) || src[pos] != '{' {
		return "", 0, false
	}
	pos++
	start := pos
	for pos < len(src) && src[pos] != '}' {
		if !(isAlnum(src[pos]) || src[pos] == '_') {
			return "", 0, false
		}
		pos++
	}
	if pos >= len(src) || start == pos || isDigit(src[start]) {
		return "", 0, false
	}
	name := string(src[start:pos])
	return name, pos + 1, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAlnum(r rune) bool { return isDigit(r) || isAlpha(r) }
