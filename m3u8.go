package m3u8

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fetcher retrieves the raw text of a playlist document. Implementations own
// all transport policy (timeouts, headers, retries); the fetch package
// provides an HTTP implementation.
type Fetcher interface {
	Fetch(uri string) (string, error)
}

// Decode reads a master playlist from the reader. It is recommended that
// this be used when a m3u8 document is already at hand, and FromURI be used
// with a URL.
func Decode(r io.Reader) (*Playlist, error) {
	lines := scanLines(r)
	if err := validate(lines); err != nil {
		return nil, err
	}
	return parseMaster(lines), nil
}

// Parse decodes a master playlist from raw text. It performs no I/O.
func Parse(raw string) (*Playlist, error) {
	return Decode(strings.NewReader(raw))
}

// FromURI retrieves the document at uri through the fetcher and decodes it.
// A retrieval failure is returned as a *FetchError wrapping the fetcher's
// error; a decode failure is returned as a *FormatError.
func FromURI(uri string, fetcher Fetcher) (*Playlist, error) {
	body, err := fetcher.Fetch(uri)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	return Parse(body)
}

// scanLines splits the document into trimmed, non-empty lines in document
// order.
func scanLines(r io.Reader) (lines []string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text != "" { // Ignore stupid whitespace
			lines = append(lines, text)
		}
	}
	return
}

// validate checks the structural preconditions over the whole line sequence
// before any parsing happens. It neither consumes nor reorders the lines;
// parseMaster rescans from the start.
func validate(lines []string) error {
	if len(lines) == 0 {
		return &FormatError{Reason: "empty playlist"}
	}

	if lines[0] != TagHeader {
		return &FormatError{Reason: fmt.Sprintf("does not begin with %s header", TagHeader)}
	}

	// 4.3.1.2 - "A Playlist file MUST NOT contain more than one EXT-X-VERSION tag."
	var versions int
	for _, line := range lines {
		if classify(line) == kindVersion {
			versions++
		}
	}
	if versions > 1 {
		return &FormatError{Reason: fmt.Sprintf("contains %d %s tags, at most one allowed", versions, TagVersion)}
	}
	return nil
}
