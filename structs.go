package m3u8

import "sort"

// Playlist represents a decoded master playlist. The three record groups
// keep the order the tags appeared in the document.
type Playlist struct { // 4.3.4
	IndependentSegments bool
	Version             string
	MediaTags           []Attributes
	VariantStreams      []Attributes
	MediaResources      []Attributes
}

// newPlaylist returns an empty playlist with the protocol version a playlist
// without an #EXT-X-VERSION tag is assumed to have.
func newPlaylist() *Playlist {
	return &Playlist{Version: "2"}
}

// MediaTagsBy returns a copy of MediaTags sorted ascending by the string
// value at key. Records without the key sort first. The stored group keeps
// its order; only the returned copy is sorted.
func (p *Playlist) MediaTagsBy(key string) []Attributes {
	return sortedBy(p.MediaTags, key)
}

// VariantStreamsBy returns a sorted copy of VariantStreams; see MediaTagsBy.
func (p *Playlist) VariantStreamsBy(key string) []Attributes {
	return sortedBy(p.VariantStreams, key)
}

// MediaResourcesBy returns a sorted copy of MediaResources; see MediaTagsBy.
func (p *Playlist) MediaResourcesBy(key string) []Attributes {
	return sortedBy(p.MediaResources, key)
}

// sortedBy clones the group before sorting so accessor calls never disturb
// the stored order. Values are compared as strings; a missing key reads as
// the empty string. The records themselves are shared with the store, not
// copied.
func sortedBy(group []Attributes, key string) []Attributes {
	sorted := make([]Attributes, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][key] < sorted[j][key]
	})
	return sorted
}
