package payload

import "strings"

// DecodeMeta decodes a type-12 payload: the buffer is split on '\n', then
// each non-empty line is split on its first ':' into a tag/value pair.
// Whitespace around the value is preserved verbatim. Duplicate tag keys:
// the last one wins. No tag is mandatory; unrecognized tags (anything
// other than name, xmid, color) are preserved as-is.
func DecodeMeta(buf []byte) Meta {
	m := Meta{}

	lines := strings.Split(string(buf), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}

		tag := line[:idx]
		value := line[idx+1:]
		m[tag] = value
	}

	return m
}

// Encode serializes m back to newline-separated "tag:value" lines. Key
// order is unspecified (map iteration), which is fine for this format
// since each line stands alone.
func (m Meta) Encode() []byte {
	var b strings.Builder
	first := true
	for tag, value := range m {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(tag)
		b.WriteByte(':')
		b.WriteString(value)
	}

	return []byte(b.String())
}
