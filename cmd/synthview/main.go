// Command synthview prints synthetic views of container variables stored in a memory snapshot.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
