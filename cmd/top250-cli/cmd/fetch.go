package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Prints the current Top 250 snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		snapshot, err := board.GetSnapshot(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Rank", "Gamertag", "SR", "SR +/-", "Win Streak", "Pro"})

		for _, r := range snapshot.Records {
			t.AppendRow(table.Row{
				r.RankDense, r.Gamertag, r.SkillRating,
				r.DeltaSkillRating, r.WinStreak, r.IsPro,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
