package m3u8

import "fmt"

// FormatError reports a document that failed master-playlist validation:
// empty input, a missing #EXTM3U header, or more than one version tag.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "m3u8: invalid playlist: " + e.Reason
}

// FetchError reports that the fetcher could not retrieve a playlist body.
// The underlying error is forwarded as-is, not classified further.
type FetchError struct {
	URI string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("m3u8: fetching %q: %v", e.URI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
