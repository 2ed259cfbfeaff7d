package quizscript

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert viral content creator for a quiz YouTube channel.
You write short-form quiz scripts engineered for retention.
Respond ONLY with a JSON object matching the provided schema.`

// buildUserMessage renders the five-part script brief for one topic.
func buildUserMessage(topic string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed quiz script in %s for the topic: %q.\n", cfg.Language, topic)
	b.WriteString("Follow this exact high-retention structure:\n")
	b.WriteString("1. Super fast intro (0-3s): a pattern-interrupt visual description and a shocking line. No greetings.\n")
	b.WriteString("2. Informational hook (3-7s): a challenge saying 99% of people fail this quiz.\n")
	fmt.Fprintf(&b, "3. Main body: %d highly engaging questions. Each question must have %d options and exactly 1 correct answer copied verbatim from the options, plus a one-line fact.\n",
		cfg.Questions, cfg.Options)
	b.WriteString("4. Surprise twist: a \"did you know\" fact that is highly shareable.\n")
	b.WriteString("5. Smart CTA: a clever way to ask for likes based on the viewer's score.\n")
	fmt.Fprintf(&b, "Echo the topic in the \"topic\" field. Write every text field in %s.", cfg.Language)

	return b.String()
}
