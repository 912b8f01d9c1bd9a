// cmd/pbstat/main.go
package main

import (
	"os"

	"pbxplore/internal/statapp"
)

func main() {
	os.Exit(statapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
