// Package cliargs separates this tool's own options from the arguments that
// are forwarded to git commit.
package cliargs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingValue is returned when -m or --message has no value
var ErrMissingValue = errors.New("flag needs an argument")

const (
	previewFlag = "--refs-preview"
	pickFlag    = "--refs-pick"
)

// Options are the arguments this tool consumes itself
type Options struct {
	// Message is the commit message given with -m/--message. Several -m
	// values are joined as separate paragraphs, as git commit does.
	Message    string
	HasMessage bool
	// Preview prints the template and git command instead of committing
	Preview bool
	// Pick lets the user choose which references to keep
	Pick bool
}

func (o *Options) addMessage(msg string) {
	if o.HasMessage {
		o.Message += "\n\n" + msg
	} else {
		o.Message = msg
	}
	o.HasMessage = true
}

// Normalize splits raw into this tool's options and the passthrough
// arguments for git commit, which keep their original order.
//
// A short flag cluster containing m (e.g. -am) is rewritten to the cluster
// without m plus an explicit -m, so the value after it becomes the message
// instead of reaching git as a stray argument.
func Normalize(raw []string) (Options, []string, error) {
	var opts Options
	passthrough := make([]string, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		switch {
		case arg == "--":
			passthrough = append(passthrough, raw[i:]...)
			return opts, passthrough, nil

		case arg == "-m" || arg == "--message":
			if i+1 >= len(raw) {
				return opts, nil, fmt.Errorf("%s: %w", arg, ErrMissingValue)
			}
			i++
			opts.addMessage(raw[i])

		case strings.HasPrefix(arg, "--message="):
			opts.addMessage(strings.TrimPrefix(arg, "--message="))

		case arg == previewFlag:
			opts.Preview = true

		case arg == pickFlag:
			opts.Pick = true

		case isMessageCluster(arg):
			if rest := strings.ReplaceAll(arg, "m", ""); rest != "-" {
				passthrough = append(passthrough, rest)
			}
			if i+1 >= len(raw) {
				return opts, nil, fmt.Errorf("%s: %w", arg, ErrMissingValue)
			}
			i++
			opts.addMessage(raw[i])

		default:
			passthrough = append(passthrough, arg)
		}
	}

	return opts, passthrough, nil
}

// isMessageCluster reports whether arg is a single-dash flag group other
// than -m itself that contains m
func isMessageCluster(arg string) bool {
	return len(arg) > 2 &&
		arg[0] == '-' &&
		arg[1] != '-' &&
		strings.ContainsRune(arg, 'm')
}
