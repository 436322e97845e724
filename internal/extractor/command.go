package extractor

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandReader runs the tesseract binary as a subprocess. It holds no
// state, so one instance may serve any number of pool slots.
type CommandReader struct {
	binary   string
	language string
}

func NewCommandReader(binary, language string) *CommandReader {
	return &CommandReader{binary: binary, language: language}
}

func (c *CommandReader) ReadText(ctx context.Context, path string) ([]string, error) {
	cmd := exec.CommandContext(ctx, c.binary, path, "stdout", "-l", c.language)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("tesseract interrupted: %w", ctxErr)
		}
		return nil, fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return splitLines(out), nil
}

// splitLines returns the non-blank lines of out, trimmed.
func splitLines(out []byte) []string {
	lines := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
