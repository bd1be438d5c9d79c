package m3u8

// parseMaster drives one forward pass over the validated lines, dispatching
// on the tag kind. The index is advanced manually because #EXT-X-STREAM-INF
// consumes the line that follows it as the variant's URI.
func parseMaster(lines []string) *Playlist {
	playlist := newPlaylist()
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch classify(line) {
		case kindHeader:
			// Already checked by validate.
		case kindIndependentSegments: // 4.3.5.1
			playlist.IndependentSegments = true
		case kindVersion: // 4.3.1.2
			playlist.Version = payload(line)
		case kindMedia: // 4.3.4.1
			playlist.MediaTags = append(playlist.MediaTags, parseAttributes(payload(line)))
		case kindIFrameStreamInf: // 4.3.4.3
			playlist.MediaResources = append(playlist.MediaResources, parseAttributes(payload(line)))
		case kindStreamInf: // 4.3.4.2
			attributes := parseAttributes(payload(line))
			var uri string
			if i+1 < len(lines) {
				i++
				uri = lines[i]
			}
			attributes["uri"] = uri
			playlist.VariantStreams = append(playlist.VariantStreams, attributes)
		case kindUnrecognized:
			// Unknown and future tags are tolerated, not rejected.
		}
	}
	return playlist
}
