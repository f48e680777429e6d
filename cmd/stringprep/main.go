// Command stringprep is a CLI tool for RFC 3454 string preparation.
//
// Usage:
//
//	stringprep <command> [options] <args>
//
// Commands:
//
//	prep      Prepare a string under a preparation profile
//	profiles  List the available profiles and flags
//	version   Show version information
//	help      Show help message
//
// Examples:
//
//	# Prepare a SCRAM username
//	stringprep prep -profile scram-username 'a,b=c'
//
//	# Show the prepared bytes as hex
//	stringprep prep -profile saslprep-stored -hex 'user name'
package main

import (
	"os"

	"github.com/georgepadayatti/stringprep/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/stringprep
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.BuildTime = buildTime

	// Run the CLI
	cli.Run(os.Args)
}
