package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <gamertag>",
	Short: "Looks up one player in the Top 250 by gamertag (case-insensitive).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		record, err := board.FindPlayer(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Rank", record.RankDense})
		t.AppendRow(table.Row{"Gamertag", record.Gamertag})
		t.AppendRow(table.Row{"Total SR", record.SkillRating})
		t.AppendRow(table.Row{"Today's SR +/-", record.DeltaSkillRating})
		t.AppendRow(table.Row{"Win Streak", record.WinStreak})
		t.AppendRow(table.Row{"Longest Win Streak", record.LongestWinStreak})
		t.AppendRow(table.Row{"Playing", record.SessionLive})
		t.AppendRow(table.Row{"Last Session W/L", fmt.Sprintf("%d/%d", record.SessionWins, record.SessionLosses)})
		t.AppendRow(table.Row{"Last Session Time", fmt.Sprintf("%dh %dm", record.SessionHours, record.SessionMinutes)})
		t.AppendRow(table.Row{"Last Session SR", record.SessionSrDelta})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
