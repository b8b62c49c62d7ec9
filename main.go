// Package main is the entry point for the amaze CLI.
package main

import "amaze.dev/pkg/amaze/cmd"

func main() {
	cmd.Execute()
}
