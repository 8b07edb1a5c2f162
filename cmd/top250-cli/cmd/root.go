package cmd

import (
	"fmt"
	"os"

	"top250-backend/lib/scrapers/wzranked"
	"top250-backend/lib/telemetry"
	"top250-backend/services/leaderboard"

	"github.com/spf13/cobra"
)

var BaseUrl string

var board *leaderboard.Service

var rootCmd = &cobra.Command{
	Use:   "top250-cli",
	Short: "top250-cli inspects the wzranked MW2 ranked Top 250 from the terminal.",
}

func Execute() {
	telemetry.InitSlog(false)

	board = leaderboard.NewService(
		wzranked.NewClient(wzranked.ClientOptions{BaseUrl: BaseUrl}),
		leaderboard.Options{},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
