package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Severity is a glog severity letter.
type Severity byte

const (
	SeverityNone    Severity = 0
	SeverityInfo    Severity = 'I'
	SeverityWarning Severity = 'W'
	SeverityError   Severity = 'E'
	SeverityFatal   Severity = 'F'
)

// Entry is one parsed line of a glog file.
type Entry struct {
	Severity Severity
	Time     string // "mmdd hh:mm:ss.uuuuuu"
	Source   string // "file.go:123"
	Message  string
}

// Lmmdd hh:mm:ss.uuuuuu threadid file:line] msg
var glogLine = regexp.MustCompile(`^([IWEF])(\d{4} \d{2}:\d{2}:\d{2}\.\d{6})\s+\d+\s+([^\]]+)\] ?(.*)$`)

var headerPrefixes = []string{
	"Log file created at:",
	"Running on machine:",
	"Binary:",
	"Log line format:",
}

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries reads the tail of a glog file and parses it. File headers are
// dropped, so fewer than maxLines entries may be returned.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if isHeader(line) {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse splits a glog line into its fields. Lines that don't carry a glog
// prefix, such as continuations of a multi-line message, come back with
// SeverityNone and the raw text as the message.
func Parse(line string) Entry {
	m := glogLine.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line}
	}
	return Entry{
		Severity: Severity(m[1][0]),
		Time:     m[2],
		Source:   strings.TrimSpace(m[3]),
		Message:  m[4],
	}
}

func isHeader(line string) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
