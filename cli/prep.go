package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/georgepadayatti/stringprep/bytestring"
	"github.com/georgepadayatti/stringprep/config"
	"github.com/georgepadayatti/stringprep/prep"
)

// PrepOptions contains options for the prep command.
type PrepOptions struct {
	Profile    string
	Flags      string
	ConfigFile string
	Hex        bool
}

// PrepCommand implements the 'prep' command.
func PrepCommand(args []string) {
	prepFlags := flag.NewFlagSet("prep", flag.ExitOnError)

	var opts PrepOptions

	prepFlags.StringVar(&opts.Profile, "profile", "", "Named preparation profile (see 'profiles')")
	prepFlags.StringVar(&opts.Flags, "flags", "", "Comma-separated flag names instead of a named profile")
	prepFlags.StringVar(&opts.ConfigFile, "config", "", "YAML file with additional named profiles")
	prepFlags.BoolVar(&opts.Hex, "hex", false, "Print the prepared bytes as hex instead of raw")

	prepFlags.Usage = func() {
		fmt.Printf("Usage: %s prep [options] [string]\n\n", os.Args[0])
		fmt.Println("Prepare a string under an RFC 3454 preparation profile and print")
		fmt.Println("the resulting UTF-8 bytes. With no string argument, standard input")
		fmt.Println("is read and prepared as a whole.")
		fmt.Println("")
		fmt.Println("Options:")
		prepFlags.PrintDefaults()
		fmt.Println("")
		fmt.Println("Examples:")
		fmt.Printf("  %s prep -profile saslprep-stored 'user name'\n", os.Args[0])
		fmt.Printf("  %s prep -profile scram-username -hex 'a,b=c'\n", os.Args[0])
		fmt.Printf("  %s prep -flags MAP_TO_SPACE,FORBID_ASCII_CONTROL 'a b'\n", os.Args[0])
	}

	if err := prepFlags.Parse(args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		osExit(1)
		return
	}

	profile, err := resolveProfile(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
		return
	}

	input, err := readInput(prepFlags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		osExit(1)
		return
	}

	sink := bytestring.NewBuilder(len(input))
	if err := prep.Encode(input, sink, profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
		return
	}

	if opts.Hex {
		fmt.Printf("%X\n", sink.ToArray())
	} else {
		os.Stdout.Write(sink.ToArray())
		fmt.Println()
	}
}

// resolveProfile builds the profile mask from the command options:
// either explicit flag names or a named profile from the built-ins and
// the optional config file. With neither option the empty profile is
// used (UTF-8 encoding with the always-on bidi check only).
func resolveProfile(opts *PrepOptions) (prep.Profile, error) {
	if opts.Flags != "" && opts.Profile != "" {
		return 0, fmt.Errorf("-profile and -flags are mutually exclusive")
	}

	if opts.Flags != "" {
		return config.ParseFlags(strings.Split(opts.Flags, ","))
	}

	var cfg *config.Config
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.LoadFromFile(opts.ConfigFile)
		if err != nil {
			return 0, err
		}
	}

	if opts.Profile == "" {
		return 0, nil
	}
	return cfg.Profile(opts.Profile)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
