package service

import (
	"fmt"
	"strings"

	"examprep/internal/domain"
)

// chatPreamble is the fixed system message prepended to every chat turn.
const chatPreamble = `You are a knowledgeable exam-preparation tutor. Answer the student's questions clearly and accurately, using any study material provided as context. Format mathematical expressions with Markdown-compatible LaTeX: single dollar signs for inline formulas and double dollar signs for display formulas.`

// contextualQueryTemplate wraps the user's question in the assembled
// context block, instructing the model to prefer it when relevant.
const contextualQueryTemplate = `Use the following study material as context. Prefer it over general knowledge when it is relevant to the question.

--- STUDY MATERIAL ---
%s
--- END STUDY MATERIAL ---

Question: %s`

const titlePromptTemplate = `Generate a short title (6 words or fewer) for a conversation that starts with this message. Reply with the title only, no quotes or punctuation around it.

Message: %s`

const latexRules = `IMPORTANT FORMATTING INSTRUCTIONS:
1. Format ALL mathematical expressions using Markdown-compatible LaTeX syntax:
   - For inline formulas, use single dollar signs: $E=mc^2$
   - For display/block formulas, use double dollar signs: $$\sum_{i=1}^{n} i = \frac{n(n+1)}{2}$$
2. Ensure all special LaTeX characters are properly escaped (e.g., use \alpha for α, \beta for β)
3. Maintain line breaks for clarity in longer equations
4. For matrices, use the proper LaTeX environment: $$\begin{matrix} a & b \\ c & d \end{matrix}$$`

var summaryPrompts = map[domain.SummaryMode]string{
	domain.ModeSummarize: `You are an expert in mathematics and statistics. Please summarize the following text, paying special attention to mathematical formulas and concepts.

` + latexRules + `

Text: %s

Summarize:`,

	domain.ModeElaborate: `You are an expert in mathematics and statistics. Please elaborate on the following text, providing more details and context while maintaining accuracy.

` + latexRules + `

Text: %s

Elaborate:`,

	domain.ModeLearn: `You are a world-class mathematics and statistics educator. Your task is to explain the following content in a way that helps someone learn the topic deeply. Assume the reader is a student who wants to truly understand the concepts, not just memorize formulas.

For each concept, you should:
1. Explain the intuition behind it in plain language
2. Show the formal definition with proper notation
3. Provide a simple example that illustrates the concept
4. Connect it to other related concepts when relevant
5. Highlight common misconceptions or pitfalls

` + latexRules + `
5. Use markdown headings (##) to organize the content into clear sections

Text: %s

Explanation:`,
}

const mindMapSystem = `You are an assistant that produces concept mind maps as JSON. Respond with a single JSON object and nothing else.`

const mindMapPromptTemplate = `Create a mind map for the subject "%s"%s.

Respond with a JSON object of this exact shape:
{
  "title": "short title",
  "root_node": {"id": "root", "label": "...", "description": "...", "children": ["id1", "id2"]},
  "nodes": {
    "root": {"id": "root", "label": "...", "description": "...", "children": ["id1", "id2"]},
    "id1": {"id": "id1", "label": "...", "description": "...", "children": []},
    "id2": {"id": "id2", "label": "...", "description": "...", "children": []}
  }
}

Rules:
- "root_node" must also appear as an entry in "nodes" under its id.
- Every id listed in any "children" array must be a key in "nodes".
- Cover the most important concepts, 8 to 15 nodes total.%s`

const modulePromptTemplate = `Write a complete learning module for the subject "%s"%s. Structure it with markdown headings: an introduction, the core concepts each with an explanation and a worked example, common pitfalls, and a short self-test with answers.

` + latexRules + `%s`

const podcastPromptTemplate = `Write a podcast script in which two hosts, Alex and Sam, discuss the subject "%s"%s for exam revision. The tone is conversational but accurate. Mark each line with the speaker's name followed by a colon. Spell out formulas in words so they can be read aloud. Aim for roughly five minutes of speech.%s`

// buildArtifactQuery builds the retrieval query for artifact generation
func buildArtifactQuery(subject, topic string) string {
	if topic == "" {
		return subject
	}
	return subject + " " + topic
}

// topicClause renders the optional topic for prompt interpolation
func topicClause(topic string) string {
	if topic == "" {
		return ""
	}
	return fmt.Sprintf(", focusing on %q", topic)
}

// contextClause renders the retrieved study material for prompt
// interpolation; empty context adds nothing.
func contextClause(contextBlock string) string {
	if strings.TrimSpace(contextBlock) == "" {
		return ""
	}
	return "\n\nBase the content on this study material where relevant:\n\n" + contextBlock
}
