package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

var playCmd = &cobra.Command{
	Use:   "play [file|-]",
	Short: "Play a script in the terminal without the UI",
	Long: `Play back a script with the real stage timings, printing each state.

The script is read from a JSON file, from stdin with "-", or generated
first with --topic. Interrupting closes the playback.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("topic", "", "Generate a script for this topic and play it")
}

func runPlay(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if (topic == "") == (len(args) == 0) {
		return fmt.Errorf("pass either a script file or --topic")
	}

	d, err := loadDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	var script *quizscript.Script
	if topic != "" {
		script, err = d.generator.Generate(cmd.Context(), topic)
	} else {
		script, err = readScript(args[0], cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	states := make(chan playback.State, 16)
	done := make(chan struct{})
	defer close(done)
	seq := playback.New(script,
		playback.WithTimings(d.cfg.Timings()),
		playback.WithLogger(d.log),
		playback.WithObserver(func(s playback.State) {
			select {
			case states <- s:
			case <-done:
			}
		}),
	)
	defer seq.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	out := cmd.OutOrStdout()
	seq.Start()
	for {
		select {
		case s := <-states:
			printFrame(out, playback.FrameFor(script, s))
			if s.Terminal() {
				return nil
			}
		case <-interrupt:
			seq.Close()
			fmt.Fprintln(out, "\nplayback closed")
			return nil
		}
	}
}

// readScript loads a script from path, or from stdin when path is "-".
func readScript(path string, stdin io.Reader) (*quizscript.Script, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var script quizscript.Script
	if err := json.NewDecoder(r).Decode(&script); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &script, nil
}

// printFrame writes one block of plain text per state.
func printFrame(w io.Writer, f playback.Frame) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", f.Stage)
	if f.Heading != "" {
		b.WriteString(" " + f.Heading)
	}
	b.WriteString("\n")

	switch f.Stage {
	case playback.StageIntro:
		fmt.Fprintf(&b, "  দৃশ্য: %s\n", f.Visual)
	case playback.StageQuiz:
		fmt.Fprintf(&b, "  %s\n", f.Body)
		for _, o := range f.Options {
			mark := " "
			if o.Correct {
				mark = "✓"
			}
			fmt.Fprintf(&b, "  %s %s. %s\n", mark, o.Letter, o.Text)
		}
		if f.ShowAnswer {
			fmt.Fprintf(&b, "  %s %s\n", f.Banner, f.Fact)
		} else {
			fmt.Fprintf(&b, "  %s %d\n", playback.LabelTimeLeft, f.Countdown)
		}
	case playback.StageTwist:
		fmt.Fprintf(&b, "  %s\n  %s\n", f.Body, f.Fact)
	default:
		if f.Body != "" {
			fmt.Fprintf(&b, "  %s\n", f.Body)
		}
	}
	fmt.Fprint(w, b.String())
}
