// Command summarize is the reference CLI for the textloom extractive
// summarization pipeline.
package main

import (
	"github.com/textloom/summarizer/cmd/summarize/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.Version = version
	cli.Run()
}
