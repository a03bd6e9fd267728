package main

import (
	"fmt"
	"os"

	"github.com/MrSnakeDoc/folio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ folio: %v\n", err)
		os.Exit(1)
	}
}
