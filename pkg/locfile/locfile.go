// Package locfile reads location list files: one location token per line,
// blank lines and # comments ignored.
package locfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the location tokens from path in file order. Inline comments
// after a token are stripped; the first whitespace-delimited field on each
// remaining line is the token.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening location list: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tokens = append(tokens, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading location list: %w", err)
	}
	return tokens, nil
}
