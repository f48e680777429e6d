package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/georgepadayatti/stringprep/config"
)

// ProfilesCommand implements the 'profiles' command.
func ProfilesCommand(args []string) {
	profFlags := flag.NewFlagSet("profiles", flag.ExitOnError)

	var configFile string
	profFlags.StringVar(&configFile, "config", "", "YAML file with additional named profiles")

	profFlags.Usage = func() {
		fmt.Printf("Usage: %s profiles [options]\n\n", os.Args[0])
		fmt.Println("List the available named profiles and the flag names accepted by")
		fmt.Println("'prep -flags'.")
		fmt.Println("")
		fmt.Println("Options:")
		profFlags.PrintDefaults()
	}

	if err := profFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
		return
	}

	var cfg *config.Config
	if configFile != "" {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			osExit(1)
			return
		}
	}

	fmt.Println("Profiles:")
	for _, name := range cfg.Names() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("")
	fmt.Println("Flags:")
	for _, name := range config.FlagNames() {
		fmt.Printf("  %s\n", name)
	}
}
