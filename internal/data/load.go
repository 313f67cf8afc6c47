package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// document mirrors the top-level shape of the data file. Pointer sections
// distinguish an absent key from an empty one: every top-level key is
// required and its absence is fatal at startup.
type document struct {
	Volunteer    *VolunteerSection `json:"volunteer" yaml:"volunteer"`
	Donations    *DonationsSection `json:"donations" yaml:"donations"`
	Organization *OrganizationInfo `json:"organization" yaml:"organization"`
}

// Load reads the data document at path and returns the validated Store.
// Format is detected by extension (.yaml/.yml vs .json) or, failing that,
// by content.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	st, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// Parse builds a Store from raw bytes. ext is the file extension used as a
// format hint; empty means detect from content (leading '{' or '[' = JSON).
func Parse(raw []byte, ext string) (*Store, error) {
	var doc document
	if err := unmarshal(raw, ext, &doc); err != nil {
		return nil, err
	}

	if doc.Volunteer == nil {
		return nil, fmt.Errorf("data document missing required key %q", "volunteer")
	}
	if doc.Donations == nil {
		return nil, fmt.Errorf("data document missing required key %q", "donations")
	}
	if doc.Organization == nil {
		return nil, fmt.Errorf("data document missing required key %q", "organization")
	}
	if doc.Volunteer.Opportunities == nil {
		return nil, fmt.Errorf("volunteer.opportunities must be an array")
	}

	st := &Store{
		Volunteer:    *doc.Volunteer,
		Donations:    *doc.Donations,
		Organization: *doc.Organization,
	}
	if err := validate(st); err != nil {
		return nil, err
	}
	return st, nil
}

func unmarshal(raw []byte, ext string, doc *document) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("parse data yaml: %w", err)
		}
		return nil
	case ".json":
		if err := json.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("parse data json: %w", err)
		}
		return nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("parse data json: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse data yaml: %w", err)
	}
	return nil
}

// validate runs the one-shot record validation. Downstream code relies on
// these shapes and performs no runtime type inspection of its own.
func validate(st *Store) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(st.Volunteer); err != nil {
		return fmt.Errorf("invalid volunteer section: %w", err)
	}
	if err := v.Struct(st.Donations); err != nil {
		return fmt.Errorf("invalid donations section: %w", err)
	}
	if err := v.Struct(st.Organization); err != nil {
		return fmt.Errorf("invalid organization section: %w", err)
	}

	seen := make(map[string]bool, len(st.Volunteer.Opportunities))
	for _, opp := range st.Volunteer.Opportunities {
		if seen[opp.ID] {
			return fmt.Errorf("duplicate opportunity id %q", opp.ID)
		}
		seen[opp.ID] = true
	}
	return nil
}
