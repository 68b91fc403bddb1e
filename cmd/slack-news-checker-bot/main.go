package main

import (
	"os"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
