package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mushaf/internal/content"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List available chapters",
	Long:  `List the chapters available from the content directory and the embedded fallback set.`,
	RunE:  runChapters,
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}

func runChapters(cmd *cobra.Command, args []string) error {
	provider := content.NewDir(cfg.ContentDir)
	chapters, err := provider.Chapters(context.Background())
	if err != nil {
		return fmt.Errorf("listing chapters: %w", err)
	}

	for _, ch := range chapters {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-16s %s  (%d verses)\n",
			ch.Number, ch.Name, ch.ArabicName, ch.VerseCount)
	}
	return nil
}
