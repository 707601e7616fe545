package main

import (
	"os"

	"github.com/themeport/themeport/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
