// Package main is the entry point for the bpship CLI.
package main

import "bpship.dev/pkg/bpship/cmd"

func main() {
	cmd.Execute()
}
