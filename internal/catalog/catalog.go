// Package catalog provides the seed list of activities loaded into the
// directory at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/internal/persistence"
)

//go:embed activities.yaml
var defaultCatalog []byte

type document struct {
	Activities []entry `yaml:"activities"`
}

type entry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Default returns the built-in school catalog.
func Default() ([]persistence.Activity, error) {
	activities, err := decode(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("decode built-in catalog: %w", err)
	}
	return activities, nil
}

// LoadFile reads a catalog from a YAML file shaped like the built-in one.
func LoadFile(path string) ([]persistence.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	activities, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}
	return activities, nil
}

// Load returns the catalog stored at path, or the built-in catalog when path
// is empty.
func Load(path string) ([]persistence.Activity, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

func decode(r io.Reader) ([]persistence.Activity, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, err
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	activities := make([]persistence.Activity, 0, len(doc.Activities))
	for _, e := range doc.Activities {
		participants := make([]string, 0, len(e.Participants))
		participants = append(participants, e.Participants...)
		activities = append(activities, persistence.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    participants,
		})
	}
	return activities, nil
}

func (d document) validate() error {
	if len(d.Activities) == 0 {
		return errors.New("catalog has no activities")
	}

	var errs []error
	names := make(map[string]struct{}, len(d.Activities))
	for i, e := range d.Activities {
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("activities[%d]: name is required", i))
			continue
		}
		if _, dup := names[e.Name]; dup {
			errs = append(errs, fmt.Errorf("activities[%d]: duplicate name %q", i, e.Name))
		}
		names[e.Name] = struct{}{}

		if e.MaxParticipants <= 0 {
			errs = append(errs, fmt.Errorf("activities[%d]: max_participants must be positive", i))
		}

		emails := make(map[string]struct{}, len(e.Participants))
		for _, email := range e.Participants {
			if _, dup := emails[email]; dup {
				errs = append(errs, fmt.Errorf("activities[%d]: participant %q listed twice", i, email))
			}
			emails[email] = struct{}{}
		}
	}
	return errors.Join(errs...)
}
