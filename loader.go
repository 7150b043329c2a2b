package transparence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// This file persists profiles in a directory, one JSON file per person,
// human-readable and git-friendly. The file name is the profile id, which
// is stable across runs, so updates rewrite in place.

// SaveProfile writes a profile into dir as <id>.json. The write goes
// through a temporary file and a rename so an interrupted run never leaves
// a truncated profile behind.
func SaveProfile(dir string, p *Profile) error {
	if p.ID == "" {
		return errors.New("profile has no id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, p.ID+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", p.ID, err)
	}
	if err := EncodeProfile(tmp, p); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("saving profile %s: %w", p.ID, err)
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, p.ID+".json"))
}

// FindProfiles loads the profiles stored under dir. An empty query loads
// them all; otherwise a profile matches when the query equals its id or
// folds to the person's name key. A missing directory is an empty store,
// not an error.
func FindProfiles(dir, query string) ([]*Profile, error) {
	key := NameKey(query)
	var profiles []*Profile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		p, err := loadProfileFile(path)
		if err != nil {
			return err
		}
		if query != "" && p.ID != query && p.Person.Key() != key {
			return nil
		}
		profiles = append(profiles, p)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return profiles, nil
}

// FindProfile returns the unique profile matching query.
func FindProfile(dir, query string) (*Profile, error) {
	profiles, err := FindProfiles(dir, query)
	if err != nil {
		return nil, err
	}
	switch len(profiles) {
	case 0:
		return nil, fmt.Errorf("no profile matches %q", query)
	case 1:
		return profiles[0], nil
	default:
		return nil, fmt.Errorf("%d profiles match %q", len(profiles), query)
	}
}

func loadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile file: %w", err)
	}
	defer f.Close()
	p, err := DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return p, nil
}
