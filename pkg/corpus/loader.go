// Package corpus loads sentence collections from plain text files,
// one sentence per line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// maxLineLen bounds a single sentence line.
const maxLineLen = 1024 * 1024

// LoadFile reads one sentence per line from path. Blank lines and
// lines starting with '#' are skipped; surrounding whitespace is
// trimmed.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	log.Debugf("Loaded %d sentences from %s", len(sentences), path)
	return sentences, nil
}

// Read consumes line-oriented sentence data from any reader.
func Read(r io.Reader) ([]string, error) {
	sentences := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}
