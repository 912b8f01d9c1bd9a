// cmd/pbcount/main.go
package main

import (
	"os"

	"pbxplore/internal/countapp"
)

func main() {
	os.Exit(countapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
