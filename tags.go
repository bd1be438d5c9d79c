package m3u8

import "strings"

// Master playlist tag names, defined in Sections 4.3.1, 4.3.4 and 4.3.5.
const (
	TagHeader              string = "#EXTM3U"
	TagIndependentSegments string = "#EXT-X-INDEPENDENT-SEGMENTS"
	TagVersion             string = "#EXT-X-VERSION"
	TagMedia               string = "#EXT-X-MEDIA"
	TagIFrameStreamInf     string = "#EXT-X-I-FRAME-STREAM-INF"
	TagStreamInf           string = "#EXT-X-STREAM-INF"
)

// tagKind is the decoded identity of a playlist line.
type tagKind int

const (
	kindUnrecognized tagKind = iota
	kindHeader
	kindIndependentSegments
	kindVersion
	kindMedia
	kindIFrameStreamInf
	kindStreamInf
)

// classify resolves the token before the first ':' (the whole line if there
// is none) against the tag names above. Exact equality only, no prefix
// matching, so #EXT-X-MEDIA-SEQUENCE stays unrecognized.
func classify(line string) tagKind {
	name := line
	if i := strings.IndexByte(line, ':'); i >= 0 {
		name = line[:i]
	}

	switch name {
	case TagHeader:
		return kindHeader
	case TagIndependentSegments:
		return kindIndependentSegments
	case TagVersion:
		return kindVersion
	case TagMedia:
		return kindMedia
	case TagIFrameStreamInf:
		return kindIFrameStreamInf
	case TagStreamInf:
		return kindStreamInf
	default:
		return kindUnrecognized
	}
}

// payload returns the portion of the line after the first ':', or an empty
// string for a bare tag.
func payload(line string) string {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return line[i+1:]
	}
	return ""
}
