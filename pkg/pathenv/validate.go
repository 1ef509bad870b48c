package pathenv

import "os"

// Validation partitions PATH entries by whether the directory exists.
type Validation struct {
	Existing []string
	Missing  []string
}

// IsValidEntry reports whether path is an existing directory.
func IsValidEntry(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Validate checks each entry against the filesystem.
func Validate(entries []string) Validation {
	var v Validation
	for _, entry := range entries {
		if IsValidEntry(entry) {
			v.Existing = append(v.Existing, entry)
		} else {
			v.Missing = append(v.Missing, entry)
		}
	}
	return v
}
