// Package main starts the inputhook daemon.
package main

import "flag"

// main is the entrypoint for the inputhook daemon.
func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logFatal(err)
	}
}
