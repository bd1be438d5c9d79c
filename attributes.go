package m3u8

import "strings"

// Attributes holds the attribute list of a single tag as raw KEY=VALUE
// pairs. Keys keep the case they had in the document; values have every
// double- and single-quote character removed.
type Attributes map[string]string

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// parseAttributes tokenizes a tag payload (Section 4.2 attribute list).
// Items are split on commas, each item on its first '='. An item without an
// '=' contributes nothing, and a repeated key overwrites the earlier value.
// Commas inside quoted values are not respected; see the package
// documentation for the resulting CODECS limitation.
func parseAttributes(data string) Attributes {
	attributes := make(Attributes)
	for _, item := range strings.Split(data, ",") {
		key, value, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		attributes[key] = quoteStripper.Replace(value)
	}
	return attributes
}
