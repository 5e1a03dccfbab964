package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/subosito/gotenv"
)

// DefaultPath is the dotenv file read at start-up, relative to the working directory.
const DefaultPath = ".env"

// Load reads the dotenv file at path (KEY=VALUE lines, # comments, optional quotes) and
// sets each variable that is not already in the environment, so real environment
// variables win. It returns the names it set. A missing file is not an error.
func Load(path string) ([]string, error) {
	vars, err := gotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env: %s: %w", path, err)
	}
	var set []string
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return set, fmt.Errorf("env: %s: %w", k, err)
		}
		set = append(set, k)
	}
	return set, nil
}
