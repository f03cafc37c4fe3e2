// Package profile resolves the stable profile id that namespaces all ledger
// data. The id is generated once, stored in a dotfile, and reused on every
// subsequent start, so the same machine always sees the same ledger.
package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hleth/pokerledger/internal/dependencies/random"
	"github.com/hleth/pokerledger/internal/model"
)

// EnvVar overrides the stored profile id when set
const EnvVar = "POKERLEDGER_PROFILE"

// DefaultFile returns the default profile file location
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pokerledger", "profile")
	}
	return filepath.Join(home, ".pokerledger", "profile")
}

// Resolve returns the profile id to use, in precedence order: the
// POKERLEDGER_PROFILE environment variable, the id stored in the given file,
// or a freshly generated id which is written to the file for next time.
func Resolve(file string, rnd random.Random) (model.ProfileID, error) {
	if env := os.Getenv(EnvVar); env != "" {
		return model.ProfileID(env), nil
	}

	data, err := os.ReadFile(file)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return model.ProfileID(id), nil
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	id := rnd.UUID()
	if err := save(file, id); err != nil {
		return "", err
	}
	return model.ProfileID(id), nil
}

func save(file, id string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}
	return os.WriteFile(file, []byte(id+"\n"), 0600)
}
