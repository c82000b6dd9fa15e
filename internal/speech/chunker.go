// Package speech turns long narration text into a single encoded audio
// payload by splitting it into sentence-aligned chunks under the TTS
// per-call character budget and synthesizing them in order.
package speech

import "regexp"

// CharLimit is the safe per-call character budget for the TTS backend.
const CharLimit = 4500

// sentenceRe matches one sentence including its terminal punctuation
// and trailing whitespace, or a trailing fragment without punctuation.
var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+\s*|[^.!?]+$`)

// SplitChunks segments text into sentence-bounded chunks, greedily
// packing consecutive sentences while the chunk stays at or below
// maxChunkSize characters. A single sentence longer than the limit
// becomes its own oversized chunk rather than being split mid-sentence.
func SplitChunks(text string, maxChunkSize int) []string {
	sentences := sentenceRe.FindAllString(text, -1)

	var chunks []string
	current := ""
	for _, sentence := range sentences {
		if len(current)+len(sentence) > maxChunkSize {
			if current != "" {
				chunks = append(chunks, current)
			}
			if len(sentence) > maxChunkSize {
				chunks = append(chunks, sentence)
				current = ""
			} else {
				current = sentence
			}
		} else {
			current += sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
