package main

import (
	"os"

	"top250-backend/cmd/top250-cli/cmd"
)

func main() {
	// optional override, mainly for pointing at a local fixture server
	cmd.BaseUrl = os.Getenv("WZRANKED_BASE_URL")

	cmd.Execute()
}
