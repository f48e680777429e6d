// Package config provides YAML-defined named preparation profiles for
// the stringprep CLI and embedding applications.
//
// A configuration file maps profile names to lists of flag names:
//
//	profiles:
//	  ldap-login: [MAP_TO_NOTHING, MAP_TO_SPACE, NORMALIZE_KC]
//	  trace-prep: [FORBID_ASCII_CONTROL, FORBID_NON_ASCII_CONTROL]
//
// The built-in profiles (saslprep-stored, saslprep-query,
// scram-username) are always available; file-defined profiles may
// shadow them.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/georgepadayatti/stringprep/prep"
	"github.com/georgepadayatti/stringprep/sasl"
)

// Common errors
var (
	ErrConfigurationError = errors.New("configuration error")
	ErrUnknownFlag        = errors.New("unknown profile flag")
	ErrUnknownProfile     = errors.New("unknown profile")
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// flagNames maps the wire-level flag names to their profile bits.
var flagNames = map[string]prep.Profile{
	"MAP_TO_NOTHING":                       prep.MapToNothing,
	"MAP_TO_SPACE":                         prep.MapToSpace,
	"MAP_SCRAM_LOGIN_CHARS":                prep.MapScramLoginChars,
	"NORMALIZE_KC":                         prep.NormalizeKC,
	"FORBID_NON_ASCII_SPACES":              prep.ForbidNonASCIISpaces,
	"FORBID_ASCII_CONTROL":                 prep.ForbidASCIIControl,
	"FORBID_NON_ASCII_CONTROL":             prep.ForbidNonASCIIControl,
	"FORBID_PRIVATE_USE":                   prep.ForbidPrivateUse,
	"FORBID_NON_CHARACTER":                 prep.ForbidNonCharacter,
	"FORBID_SURROGATE":                     prep.ForbidSurrogate,
	"FORBID_INAPPROPRIATE_FOR_PLAIN_TEXT":  prep.ForbidInappropriateForPlainText,
	"FORBID_INAPPROPRIATE_FOR_CANON_REP":   prep.ForbidInappropriateForCanonRep,
	"FORBID_CHANGE_DISPLAY_AND_DEPRECATED": prep.ForbidChangeDisplayAndDeprecated,
	"FORBID_TAGGING":                       prep.ForbidTagging,
	"FORBID_UNASSIGNED":                    prep.ForbidUnassigned,
}

// builtinProfiles are always resolvable, file or no file.
var builtinProfiles = map[string]prep.Profile{
	"saslprep-stored": sasl.ProfileStored,
	"saslprep-query":  sasl.ProfileQuery,
	"scram-username":  sasl.ProfileSCRAMUsername,
}

// FlagNames returns the known flag names, sorted.
func FlagNames() []string {
	names := make([]string, 0, len(flagNames))
	for name := range flagNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseFlags resolves a list of flag names to a combined profile mask.
func ParseFlags(names []string) (prep.Profile, error) {
	var profile prep.Profile
	for _, name := range names {
		flag, ok := flagNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
		}
		profile |= flag
	}
	return profile, nil
}

// Config holds the resolved named profiles.
type Config struct {
	// Profiles maps profile names to their flag lists as read from the
	// file.
	Profiles map[string][]string `yaml:"profiles"`

	// resolved holds the validated masks (after Validate).
	resolved map[string]prep.Profile
}

// Validate resolves every profile's flag list and rejects unknown flag
// names.
func (c *Config) Validate() error {
	c.resolved = make(map[string]prep.Profile, len(c.Profiles))
	for name, flags := range c.Profiles {
		profile, err := ParseFlags(flags)
		if err != nil {
			return &ConfigError{
				Field:   "profiles." + name,
				Message: err.Error(),
				Err:     err,
			}
		}
		c.resolved[name] = profile
	}
	return nil
}

// Profile returns the mask for a named profile, consulting file-defined
// profiles first and the built-ins second.
func (c *Config) Profile(name string) (prep.Profile, error) {
	if c != nil {
		if p, ok := c.resolved[name]; ok {
			return p, nil
		}
	}
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Names returns every resolvable profile name, sorted.
func (c *Config) Names() []string {
	seen := make(map[string]bool, len(builtinProfiles))
	for name := range builtinProfiles {
		seen[name] = true
	}
	if c != nil {
		for name := range c.resolved {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses and validates a YAML configuration document. Unknown
// top-level fields are rejected.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationError, err)
	}
	if err := checkKnownFields(data); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFromFile reads and parses a configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationError, err)
	}
	return Parse(data)
}

// checkKnownFields rejects top-level keys other than "profiles".
func checkKnownFields(data []byte) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigurationError, err)
	}
	for key := range doc {
		if key != "profiles" {
			return NewConfigError(key, "unexpected field in configuration")
		}
	}
	return nil
}
