package main

import (
	"os"
	"strings"
)

// loadSource returns the HTML of the page an item is built from. Sources
// starting with http:// or https:// are fetched over the network, anything
// else is read from disk.
func loadSource(deps *Dependencies, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return deps.Fetcher.Fetch(deps.Ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
