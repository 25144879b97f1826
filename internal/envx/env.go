// Package envx reads configuration overrides from the process environment,
// optionally seeded from a .env file.
package envx

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given files (".env" when none given)
// without overriding variables that are already set. Missing files are
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// String overwrites *dst with the variable's value when it is set and non-blank.
func String(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

// Int overwrites *dst when the variable holds a valid integer.
func Int(key string, dst *int) {
	if v, ok := lookup(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Seconds overwrites *dst when the variable holds a whole number of seconds
// or a Go duration string.
func Seconds(key string, dst *time.Duration) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Second
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
