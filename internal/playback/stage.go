package playback

import "fmt"

// Stage is a phase of the playback.
type Stage int

const (
	StageIntro Stage = iota
	StageHook
	StageQuiz
	StageTwist
	StageCTA
)

var stageNames = [...]string{"intro", "hook", "quiz", "twist", "cta"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// MarshalText encodes the stage by name for JSON frames.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a stage name.
func (s *Stage) UnmarshalText(b []byte) error {
	for i, n := range stageNames {
		if n == string(b) {
			*s = Stage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", b)
}
