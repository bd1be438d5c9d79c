/*
Package m3u8 decodes HLS master playlists into a queryable in-memory form.

Section references are from RFC 8216 Protocol Version 7. Only master-playlist
tags are handled:

	#EXTM3U
	#EXT-X-VERSION
	#EXT-X-INDEPENDENT-SEGMENTS
	#EXT-X-MEDIA
	#EXT-X-STREAM-INF
	#EXT-X-I-FRAME-STREAM-INF

Any other tag is skipped, so playlists carrying extensions or future tags
still decode. Media playlists (#EXTINF, #EXT-X-KEY, byte ranges and so on)
are not decoded by this package.

Every tag's attribute list is kept as an Attributes map of raw strings. The
tokenizer splits on commas without tracking quoting, so a quoted value that
itself contains a comma is split across items:

	CODECS="mp4a.40.5,avc1.42801e"

yields CODECS with value mp4a.40.5 and drops the dangling avc1.42801e" piece.
This deviates from the Section 4.2 attribute grammar and is a known
limitation of the comma-split approach.
*/
package m3u8
