package popen

import "strings"

// Tokenize splits command on runs of whitespace. The first token is the
// program name and the rest are passed as arguments verbatim. There is
// no quoting or escaping, so an argument can never contain whitespace.
// ErrEmptyCommand is returned when command holds no tokens.
func Tokenize(command string) (name string, args []string, err error) {
	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return tokens[0], tokens[1:], nil
}
