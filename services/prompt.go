package services

import (
	"github.com/tmc/langchaingo/prompts"
)

const chatPromptTemplate = `You are a helpful assistant that can answer questions about the documents in the following list.
Please format your response with proper paragraphs, bullet points, and numbered lists where appropriate.
Make sure to use markdown formatting for better readability.

Documents:
{{.documents}}

Question: {{.question}}
`

var chatPrompt = prompts.NewPromptTemplate(chatPromptTemplate, []string{"documents", "question"})

// BuildPrompt embeds the retrieved excerpts and the user's question, both
// verbatim, under the fixed answering instructions.
func BuildPrompt(documents, question string) (string, error) {
	return chatPrompt.Format(map[string]any{
		"documents": documents,
		"question":  question,
	})
}
