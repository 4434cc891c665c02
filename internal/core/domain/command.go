package domain

import (
	"slices"
	"sort"
	"strings"
)

// Command is the ordered token sequence of one external process invocation.
type Command []string

// With returns a copy of the command with tokens appended.
func (c Command) With(tokens ...string) Command {
	out := make(Command, 0, len(c)+len(tokens))
	out = append(out, c...)
	return append(out, tokens...)
}

// Name returns the executable token, or "" for an empty command.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns every token after the executable.
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return slices.Clone(c[1:])
}

// String renders the command as a POSIX shell line. Tokens holding anything
// outside the shell-inert set are single-quoted, so the line can be pasted
// into a shell as-is.
func (c Command) String() string {
	parts := make([]string, len(c))
	for i, tok := range c {
		parts[i] = quote(tok)
	}
	return strings.Join(parts, " ")
}

func quote(tok string) string {
	if tok != "" && strings.IndexFunc(tok, needsQuote) < 0 {
		return tok
	}
	return "'" + strings.ReplaceAll(tok, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("+-_.,/:=@", r)
}

// Environment is an immutable set of variables layered over the process
// environment for a single invocation. With returns a derived copy, so a
// variable only exists for the invocations that were handed that copy.
type Environment struct {
	vars map[string]string
}

// With returns a new Environment with key set to value.
func (e Environment) With(key, value string) Environment {
	vars := make(map[string]string, len(e.vars)+1)
	for k, v := range e.vars {
		vars[k] = v
	}
	vars[key] = value
	return Environment{vars: vars}
}

// Lookup returns the value of key if it is set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Len returns the number of variables.
func (e Environment) Len() int {
	return len(e.vars)
}

// Pairs returns the variables as sorted KEY=VALUE strings.
func (e Environment) Pairs() []string {
	pairs := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}

// Invocation is everything the executor needs to run one command.
type Invocation struct {
	// Name labels the step in progress output.
	Name string
	// Command is the token sequence.
	Command Command
	// Env is layered over the inherited process environment.
	Env Environment
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// Label returns Name, or the executable and first argument when Name is unset.
func (i Invocation) Label() string {
	if i.Name != "" {
		return i.Name
	}
	if len(i.Command) > 1 {
		return i.Command[0] + " " + i.Command[1]
	}
	return i.Command.Name()
}

// String renders the invocation as a shell-like line: environment
// assignments, then the command, prefixed by a directory change when Dir is set.
func (i Invocation) String() string {
	var b strings.Builder
	if i.Dir != "" {
		b.WriteString("cd " + Command{i.Dir}.String() + " && ")
	}
	for _, pair := range i.Env.Pairs() {
		k, v, _ := strings.Cut(pair, "=")
		b.WriteString(k + "=" + Command{v}.String() + " ")
	}
	b.WriteString(i.Command.String())
	return b.String()
}
