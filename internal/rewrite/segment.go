package rewrite

import "regexp"

// codeRe matches one fenced block, an unterminated fence running to
// the end of input, or one inline span. Alternation order keeps a
// fence from being read as two empty inline spans.
var codeRe = regexp.MustCompile("(?s)```.*?(?:```|$)|`[^`]*`")

// Split partitions src into alternating prose and code segments. Even
// indexes hold prose, odd indexes hold code with delimiters included,
// and joining all segments reproduces src byte for byte. Segments may
// be empty where code directly follows code.
func Split(src string) []string {
	var segs []string
	last := 0
	for _, m := range codeRe.FindAllStringIndex(src, -1) {
		segs = append(segs, src[last:m[0]], src[m[0]:m[1]])
		last = m[1]
	}
	return append(segs, src[last:])
}
