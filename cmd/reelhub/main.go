// filepath: cmd/reelhub/main.go
package main

import (
	"reelhub/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
