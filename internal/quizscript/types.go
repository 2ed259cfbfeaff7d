package quizscript

// Script is a generated quiz video script. It is immutable once returned
// by a Generator; a new generation replaces it wholesale.
type Script struct {
	Topic     string     `json:"topic"`
	Intro     Intro      `json:"intro"`
	Hook      string     `json:"hook"`
	Questions []Question `json:"questions"`
	Twist     Twist      `json:"twist"`
	CTA       string     `json:"cta"`
}

// Intro is the 0-3s opener: a pattern-interrupt visual and shocking line.
type Intro struct {
	VisualDescription string `json:"visualDescription"`
	Text              string `json:"text"`
}

// Twist is the closing "did you know" fact.
type Twist struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Question is a single multiple-choice question. Answer is expected to
// equal one of Options but this is only enforced in strict mode.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Fact     string   `json:"fact"`
}

// AnswerIndex returns the index of the option equal to Answer, or -1.
func (q Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

// IsAnswer reports whether option is the correct answer.
func (q Question) IsAnswer(option string) bool {
	return option == q.Answer
}
