// sbsong extracts lyrics and metadata from SongShow Plus (.sbsong) files.
package main

import (
	"os"

	"github.com/sukalov/sbsong/cmd/sbsong/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
