package main

import "github.com/emiliopalmerini/momacolors/internal/cli"

func main() {
	cli.Execute()
}
