package main

import (
	"fmt"
	"strconv"
	"strings"

	srfft "github.com/cwbudde/algo-srfft"
)

// parseSizes reads a comma-separated size list. Every entry must be a size
// the transform supports.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}

		if _, err := srfft.CreateProcedure(n); err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes in %q", list)
	}

	return out, nil
}
