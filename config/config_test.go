package config

import (
	"errors"
	"testing"

	"github.com/georgepadayatti/stringprep/prep"
	"github.com/georgepadayatti/stringprep/sasl"
)

func TestParseFlags(t *testing.T) {
	t.Run("Combines", func(t *testing.T) {
		got, err := ParseFlags([]string{"MAP_TO_NOTHING", "MAP_TO_SPACE", "NORMALIZE_KC"})
		if err != nil {
			t.Fatalf("ParseFlags failed: %v", err)
		}
		want := prep.MapToNothing | prep.MapToSpace | prep.NormalizeKC
		if got != want {
			t.Errorf("ParseFlags = %b, want %b", uint64(got), uint64(want))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := ParseFlags(nil)
		if err != nil || got != 0 {
			t.Errorf("ParseFlags(nil) = %b, %v; want 0, nil", uint64(got), err)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseFlags([]string{"FORBID_EVERYTHING"})
		if !errors.Is(err, ErrUnknownFlag) {
			t.Errorf("ParseFlags(unknown) = %v, want ErrUnknownFlag", err)
		}
	})
}

func TestFlagNamesComplete(t *testing.T) {
	names := FlagNames()
	if len(names) != 15 {
		t.Errorf("FlagNames() has %d entries, want 15", len(names))
	}
	// Every name resolves, and the bits are pairwise disjoint.
	var seen prep.Profile
	for _, name := range names {
		flag, err := ParseFlags([]string{name})
		if err != nil {
			t.Fatalf("flag %s does not resolve: %v", name, err)
		}
		if seen&flag != 0 {
			t.Errorf("flag %s overlaps another flag", name)
		}
		seen |= flag
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
profiles:
  ldap-login: [MAP_TO_NOTHING, MAP_TO_SPACE, NORMALIZE_KC]
  trace-prep: [FORBID_ASCII_CONTROL, FORBID_NON_ASCII_CONTROL]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p, err := cfg.Profile("ldap-login")
	if err != nil {
		t.Fatalf("Profile(ldap-login) failed: %v", err)
	}
	if p != prep.MapToNothing|prep.MapToSpace|prep.NormalizeKC {
		t.Errorf("ldap-login = %b", uint64(p))
	}

	if _, err := cfg.Profile("no-such-profile"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Profile(no-such-profile) = %v, want ErrUnknownProfile", err)
	}
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	data := []byte(`
profiles:
  broken: [MAP_TO_NOWHERE]
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("Parse accepted an unknown flag")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error is %T, want *ConfigError", err)
	}
	if cfgErr.Field != "profiles.broken" {
		t.Errorf("Field = %q, want profiles.broken", cfgErr.Field)
	}
	if !errors.Is(err, ErrUnknownFlag) {
		t.Error("error does not unwrap to ErrUnknownFlag")
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	data := []byte(`
profiles:
  ok: [MAP_TO_SPACE]
tables:
  - something
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("Parse accepted an unknown top-level field")
	}
}

func TestBuiltinProfiles(t *testing.T) {
	var cfg *Config

	tests := []struct {
		name string
		want prep.Profile
	}{
		{"saslprep-stored", sasl.ProfileStored},
		{"saslprep-query", sasl.ProfileQuery},
		{"scram-username", sasl.ProfileSCRAMUsername},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.Profile(tt.name)
			if err != nil {
				t.Fatalf("Profile(%s) failed: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Profile(%s) = %b, want %b", tt.name, uint64(got), uint64(tt.want))
			}
		})
	}
}

func TestFileProfileShadowsBuiltin(t *testing.T) {
	cfg, err := Parse([]byte(`
profiles:
  scram-username: [MAP_SCRAM_LOGIN_CHARS]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := cfg.Profile("scram-username")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got != prep.MapScramLoginChars {
		t.Errorf("file profile did not shadow builtin: %b", uint64(got))
	}
}

func TestNames(t *testing.T) {
	cfg, err := Parse([]byte(`
profiles:
  aaa-custom: [NORMALIZE_KC]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	names := cfg.Names()
	want := []string{"aaa-custom", "saslprep-query", "saslprep-stored", "scram-username"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
