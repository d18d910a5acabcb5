// Command bin-days serves bin collection dates scraped from the council schedule pages.
package main

import (
	"os"

	"github.com/pfrederiksen/bin-days/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
