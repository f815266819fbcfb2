package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd, "")
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer st.Close()

		raw, err := st.KV().Get(progress.StorageKey)
		if err != nil {
			fmt.Println("No progress recorded yet.")
			return nil
		}
		var p progress.UserProgress
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return fmt.Errorf("decode progress: %w", err)
		}

		fmt.Printf("Level:             %d\n", progress.LevelForPoints(p.TotalPoints))
		fmt.Printf("Total points:      %d\n", p.TotalPoints)
		fmt.Printf("Words learned:     %d\n", len(p.WordsLearned))
		fmt.Printf("Lessons completed: %d\n", len(p.LessonsCompleted))
		fmt.Printf("Day streak:        %d\n", p.CurrentStreak)
		fmt.Printf("Achievements:      %d\n", len(p.Achievements))

		recent, err := st.GameResults().Recent(10)
		if err == nil && len(recent) > 0 {
			fmt.Println("\nRecent games:")
			for _, r := range recent {
				fmt.Printf("  %-8s %4d pts  %2d/%2d  %-10s %s\n",
					r.GameKind, r.Score, r.CorrectCount, r.TotalItems,
					r.EndedReason, r.CreatedAt.Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}
