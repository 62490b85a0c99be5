// Package main is the entry point for the site application.
// It initializes and runs the command-line interface that serves
// the website and manages its assets.
package main

import "github.com/jjankovic/site/cmd"

func main() {
	cmd.Execute()
}
