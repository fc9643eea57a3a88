package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseID reads a room or doctor id from a positional argument.
func parseID(kind string, raw string) (int, error) {
	requested := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	n, err := strconv.Atoi(requested)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s id must be a positive number, got %q", kind, raw)
	}
	return n, nil
}
