package playback

import "fmt"

// On-screen labels.
const (
	LabelHook     = "চ্যালেঞ্জ গ্রহণ করুন!"
	LabelReveal   = "সঠিক উত্তর!"
	LabelTwist    = "অবাক করা তথ্য!"
	LabelRetry    = "আবার চেষ্টা করুন"
	LabelTimeLeft = "সময় বাকি"
)

// QuestionLabel is the heading for the 1-based question number n.
func QuestionLabel(n int) string {
	return fmt.Sprintf("প্রশ্ন %d", n)
}

var optionLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

func optionLetter(i int) string {
	if i < len(optionLetters) {
		return optionLetters[i]
	}
	return fmt.Sprint(i + 1)
}
