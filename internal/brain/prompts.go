package brain

import (
	"encoding/json"
	"fmt"
	"strings"

	"critic.app/backend/common/llm"
	"critic.app/backend/internal/anchor"
	"critic.app/backend/internal/model"
)

const (
	completeFraming = "This is a complete piece of writing. Provide detailed feedback."
	progressFraming = "This is a draft in progress. Focus on encouragement and developmental feedback."
)

// commentSchema is the JSON schema of one reply record, rendered once.
var commentSchema = func() string {
	data, err := json.MarshalIndent(llm.GenerateSchema[anchor.WireComment](), "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}()

func modeFraming(mode model.Mode) string {
	if mode == model.ModeProgress {
		return progressFraming
	}
	return completeFraming
}

func feedbackSystemPrompt(p model.Persona, mode model.Mode) string {
	var b strings.Builder
	b.WriteString(p.Instructions)
	b.WriteString(`

You must respond with ONLY a valid JSON array of comment objects. Do not include any other text, explanations, or markdown formatting.

Each comment object must have exactly these fields:
- "selectedText": exact text from the original that you're commenting on (5-15 words)
- "comment": your brief comment about that selection (1-2 sentences max)
- "position": object with "start" and "end" character positions
`)
	if commentSchema != "" {
		b.WriteString("\nEach object must validate against this JSON schema:\n")
		b.WriteString(commentSchema)
		b.WriteString("\n")
	}
	b.WriteString(`
Example format:
[
  {
    "selectedText": "example text",
    "comment": "Your comment here.",
    "position": {"start": 0, "end": 12}
  }
]

`)
	fmt.Fprintf(&b, "Provide 2-4 comments maximum. %s Be concise but maintain your personality. Return ONLY the JSON array.", modeFraming(mode))
	return b.String()
}

func feedbackUserPrompt(document, purpose string) string {
	return fmt.Sprintf("Analyze this %s and provide specific comments on selected portions:\n\n\"%s\"", purposeOrText(purpose), document)
}

const inspireSystemPrompt = "You are a writing assistant. Continue the given text with exactly ONE natural, flowing sentence that maintains the writing style and tone. Return only the next sentence, nothing else. No quotes, no explanations."

func inspireUserPrompt(document, purpose string) string {
	return fmt.Sprintf("Continue this %s with one natural sentence:\n\n\"%s\"", purposeOrText(purpose), document)
}

func purposeOrText(purpose string) string {
	if p := strings.TrimSpace(purpose); p != "" {
		return p
	}
	return "text"
}
