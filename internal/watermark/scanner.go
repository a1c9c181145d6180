package watermark

import "regexp"

// MinWatermarkDigits is the shortest decoded run reported by FindWatermarks.
// Anything shorter is treated as a stray marker.
const MinWatermarkDigits = 4

// Scan ranges exclude the observer sentinels, so a sentinel terminates a run.
var runPatterns = []struct {
	channel Channel
	re      *regexp.Regexp
}{
	{channel: ZeroWidth, re: regexp.MustCompile(`[\x{2060}-\x{2063}]{1,16}`)},
	{channel: Tag, re: regexp.MustCompile(`[\x{E0061}-\x{E0070}]{1,16}`)},
}

// FindWatermarks extracts every token carried by text on either channel.
// Results are deduplicated and listed in order of first appearance,
// zero-width channel first.
func FindWatermarks(text string) []string {
	var found []string
	seen := make(map[string]struct{})

	for _, p := range runPatterns {
		for _, run := range p.re.FindAllString(text, -1) {
			digits := DecodeRun(run, p.channel)
			if len(digits) < MinWatermarkDigits {
				continue
			}
			if _, ok := seen[digits]; ok {
				continue
			}
			seen[digits] = struct{}{}
			found = append(found, digits)
		}
	}

	return found
}
