// Package compose merges a rendered fragment into an HTML shell.
package compose

import "strings"

const (
	// Placeholder is replaced by the fragment when present in the shell.
	Placeholder = "__REPLACE_ANIMALS_INFO__"
	// ListCloser marks the insertion point when no placeholder exists.
	ListCloser = "</ul>"
)

// Strategy names the substitution applied by Compose.
type Strategy string

const (
	StrategyPlaceholder     Strategy = "placeholder"
	StrategyBeforeListClose Strategy = "before-list-close"
	StrategyAppend          Strategy = "append"
)

// Compose applies exactly one strategy, in order of preference: replace the
// first placeholder, insert before the first list closer, or append the
// fragment on a new line.
func Compose(shell, fragment string) (string, Strategy) {
	if idx := strings.Index(shell, Placeholder); idx >= 0 {
		return shell[:idx] + fragment + shell[idx+len(Placeholder):], StrategyPlaceholder
	}
	if idx := strings.Index(shell, ListCloser); idx >= 0 {
		return shell[:idx] + fragment + "\n" + shell[idx:], StrategyBeforeListClose
	}
	return shell + "\n" + fragment, StrategyAppend
}
