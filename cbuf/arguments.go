// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"strings"
	"unicode"
)

type QArg struct {
	a string
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Bool() bool {
	switch strings.ToLower(a.a) {
	case "1", "t", "true", "on", "yes":
		return true
	default:
		return false
	}
}

type Arguments struct {
	args []QArg
	// the trimmed input line
	full string
}

func (a Arguments) Args() []QArg {
	return a.args
}

func (a Arguments) Full() string {
	return a.full
}

// ArgumentString returns everything after the command name, with
// surrounding quotes removed.
func (a Arguments) ArgumentString() string {
	if len(a.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(a.full, a.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single command line into arguments. Double quotes group
// words, a '//' outside of quotes starts a comment.
func Parse(s string) Arguments {
	args := Arguments{
		full: strings.TrimFunc(s, unicode.IsSpace),
		args: []QArg{},
	}
	in := args.full
	for i := 0; i < len(in); {
		switch c := in[i]; {
		case c <= ' ':
			i++
		case c == '"':
			end := strings.IndexByte(in[i+1:], '"')
			if end < 0 {
				// unterminated, take the rest
				args.args = append(args.args, QArg{in[i+1:]})
				return args
			}
			args.args = append(args.args, QArg{in[i+1 : i+1+end]})
			i += end + 2
		case c == '/' && i+1 < len(in) && in[i+1] == '/':
			return args
		default:
			j := i
			for j < len(in) && in[j] > ' ' && in[j] != '"' {
				j++
			}
			args.args = append(args.args, QArg{in[i:j]})
			i = j
		}
	}
	return args
}
