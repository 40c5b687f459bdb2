// Command taskmgr manages a personal task list stored in a local file.
package main

import (
	"os"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version, bootstrap); err != nil {
		os.Exit(1)
	}
}
