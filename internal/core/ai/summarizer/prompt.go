package summarizer

import "fmt"

// basePrompt is shared by all four modes. It frames the task and bans
// filler phrasing.
const basePrompt = "You are a precise AI assistant that summarizes transcriptions of spoken content. " +
	"The transcription may involve multiple speakers. " +
	"Don't waste words with filler like \"in this transcription...\", \"the speaker says...\". "

const extractivePrompt = "Provide an extractive summary, focusing on the key points and main " +
	"ideas directly from the text. "

const abstractivePrompt = "Provide an abstractive summary, paraphrasing and revealing the main " +
	"ideas in your own words. "

const verbosePrompt = "Ensure that the summary is detailed with minimal compression, " +
	"covering all essential aspects comprehensively."

const succinctPrompt = "Ensure that the summary is concise and succinct, capturing the main " +
	"points effectively with minimal words."

// combinePrompt drives the optional extra pass over the concatenated
// per-chunk summaries.
const combinePrompt = "You are a precise AI assistant that merges partial summaries of one " +
	"transcription into a single coherent summary. The parts are given in " +
	"transcript order and may repeat context at their seams; remove the " +
	"duplication, keep every distinct point, and preserve the original order."

// SystemPrompt returns the fixed instruction text for a mode. The mapping
// is a pure lookup: same mode, same prompt.
func SystemPrompt(m Mode) string {
	s := basePrompt

	switch m.Type {
	case Extractive:
		s += extractivePrompt
	case Abstractive:
		s += abstractivePrompt
	}

	switch m.Verbosity {
	case Verbose:
		s += verbosePrompt
	case Succinct:
		s += succinctPrompt
	}

	return s
}

// ChunkPrompt wraps one transcript chunk as the user message.
func ChunkPrompt(chunk string) string {
	return fmt.Sprintf("Please summarize the following transcription:\n\n%s", chunk)
}

// CombineSystemPrompt returns the instruction for the combine pass.
func CombineSystemPrompt() string {
	return combinePrompt
}

// CombinePrompt wraps the concatenated partial summaries as the user
// message for the combine pass.
func CombinePrompt(combined string) string {
	return fmt.Sprintf("Please combine the following partial summaries into one summary:\n\n%s", combined)
}
