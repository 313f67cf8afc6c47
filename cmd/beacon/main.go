// beacon is the community-services query server: it answers volunteer,
// donation, and organization questions from a hand-curated data document,
// over MCP for chat clients or directly from the command line.
//
// Usage:
//
//	beacon serve [--http addr]                 start the MCP server (stdio by default)
//	beacon search [--keyword k] [--city c]...  search volunteer opportunities
//	beacon donations --type <online|in_kind|vehicle>
//	beacon org <free-text query>
//	beacon validate                            check the data document
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
