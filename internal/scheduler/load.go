package scheduler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Load reads a dataset file. The first line is a header and is discarded;
// every other line must hold "<duration>,<weight>". Blank lines at the start
// or end of the file are ignored. A single malformed line fails the whole
// load and no records are returned.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return records, nil
}

// Parse reads records from r using the same rules as Load.
func Parse(r io.Reader) ([]Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec, err := parseRecord(line.text)
		if err != nil {
			return nil, &ParseError{Line: line.number, Text: line.text, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

type numberedLine struct {
	number int
	text   string
}

// readLines returns the lines of r with leading and trailing blank lines
// removed. Interior blank lines are kept so they fail to parse.
func readLines(r io.Reader) ([]numberedLine, error) {
	scanner := bufio.NewScanner(r)

	var lines []numberedLine
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == 0 && strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, numberedLine{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: n + 1, Err: err}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1].text) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func parseRecord(line string) (Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Record{}, errFieldCount
	}
	duration, err := parseField(parts[0])
	if err != nil {
		return Record{}, err
	}
	weight, err := parseField(parts[1])
	if err != nil {
		return Record{}, err
	}
	return Record{Duration: duration, Weight: weight}, nil
}

func parseField(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}
