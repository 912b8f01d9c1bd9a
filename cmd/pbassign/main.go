// cmd/pbassign/main.go
package main

import (
	"os"

	"pbxplore/internal/assignapp"
)

func main() {
	os.Exit(assignapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
