package cmd

import (
	"fmt"
	"strings"

	"github.com/asmit/mentis/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show examination history and aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.EventRepo().ExamStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.Completed == 0 {
			fmt.Println("No completed examinations yet.")
			return nil
		}

		fmt.Printf("Completed examinations: %d\n", stats.Completed)
		fmt.Printf("Average score:          %.1f%%\n", stats.AvgPercentage)
		if len(stats.SeverityCounts) > 0 {
			fmt.Println("By severity:")
			for _, sev := range []string{"Normal", "Mild", "Moderate", "Severe"} {
				if n, ok := stats.SeverityCounts[sev]; ok {
					fmt.Printf("  %-10s %d\n", sev, n)
				}
			}
		}

		recent, err := s.EventRepo().RecentExams(ctx, limit)
		if err != nil {
			return fmt.Errorf("query recent exams: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-24s  %-9s  %-7s  %s\n",
			"Timestamp", "Patient", "Score", "Pct", "Severity")
		fmt.Println(strings.Repeat("─", 78))
		for _, e := range recent {
			fmt.Printf("%-19s  %-24s  %3d / %-3d  %6.1f%%  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.PatientName, 24),
				e.TotalScore,
				e.MaxScore,
				e.Percentage,
				e.Severity,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent examinations to show")
}
