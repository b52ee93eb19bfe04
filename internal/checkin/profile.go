package checkin

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is the YAML file a kiosk or laptop keeps for repeated check-ins.
type Profile struct {
	BaseURL    string        `yaml:"base_url"`
	EmployeeID string        `yaml:"employee_id"`
	Timeout    time.Duration `yaml:"timeout"`
	FramePath  string        `yaml:"frame_path"`
	Site       string        `yaml:"site"`
}

func DefaultProfile() Profile {
	return Profile{
		BaseURL: "http://localhost:3000",
		Timeout: 15 * time.Second,
	}
}

// LoadProfile overlays the YAML file at path on DefaultProfile. An empty
// path returns the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) Validate() error {
	var errs []error
	if p.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}
	if p.EmployeeID == "" {
		errs = append(errs, errors.New("employee_id is required"))
	}
	if p.FramePath == "" {
		errs = append(errs, errors.New("frame_path is required"))
	}
	if p.Site == "" {
		errs = append(errs, errors.New("site is required"))
	}
	return errors.Join(errs...)
}
