package assistant

import "strings"

// ParseInput splits a raw input line into a lower-cased command name and its
// positional arguments. A blank line yields an empty command.
func ParseInput(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", []string{}
	}

	return strings.ToLower(fields[0]), fields[1:]
}
