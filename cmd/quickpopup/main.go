// Command quickpopup splits Japanese notes into paragraphs and previews popup
// placement from the command line.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
