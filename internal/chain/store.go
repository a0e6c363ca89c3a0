package chain

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Load reads and parses the chain file at path.
//
// A missing file is not an error: it returns the empty chain, since the
// first run starts from nothing. Any other read failure is a CodeAccess
// error. Content that does not parse as a JSON array of entries, or that
// parses but violates the run-number invariant, is a CodeCorrupt error.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, newAccess(path, "cannot read chain file", err)
	}

	// A zero-length (or whitespace-only) file counts as an empty chain,
	// not corruption: touch(1) before the first run is fine.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, newCorrupt(path, "chain file is not a valid entry array", err)
	}
	if err := Validate(entries); err != nil {
		return nil, newCorrupt(path, "chain file violates run numbering", err)
	}
	return entries, nil
}

// Save serializes the full chain and replaces the file at path.
//
// The write goes to path+".tmp" first and is renamed into place, so a
// crash mid-write leaves the previous chain intact rather than a
// truncated file. The parent directory is created if absent.
func Save(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newAccess(path, "cannot create chain directory", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return newAccess(path, "cannot encode chain", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return newAccess(path, "cannot write chain file", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return newAccess(path, "cannot replace chain file", err)
	}
	return nil
}
