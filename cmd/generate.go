package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one script and print it as JSON",
	Long: `Generate a quiz script for a topic and print it to stdout.

The output can be saved and played back later with "viralquiz play <file>".`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Quiz topic (required)")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")

	d, err := loadDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	script, err := d.generator.Generate(cmd.Context(), topic)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(script); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
