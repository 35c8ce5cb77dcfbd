package prompts

import (
	_ "embed"
	"fmt"
)

// Embedded prompt files

//go:embed qa_answer.txt
var qaAnswer string

//go:embed qa_system.txt
var qaSystem string

// QASystem returns the fixed system message for chat-style providers.
func QASystem() string { return qaSystem }

// QAAnswer renders the answer prompt with the retrieved context and the
// question embedded verbatim.
func QAAnswer(contextText, question string) string {
	return fmt.Sprintf(qaAnswer, contextText, question)
}
