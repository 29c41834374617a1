package service

import (
	"fmt"
	"os"

	"lead-center-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// DispositionCatalog holds the fixed set of sub-disposition labels a caller
// may record under each disposition. Loaded from a yaml file at startup;
// falls back to the built-in catalog when the file is absent.
type DispositionCatalog struct {
	SubDispositions map[string][]string `yaml:"sub_dispositions"`
}

const defaultCatalogYAML = `
sub_dispositions:
  Interested:
    - Wants Campus Visit
    - Requested Brochure
    - Ready To Enroll
  Not Interested:
    - Budget
    - Distance
    - Chose Competitor
  Follow-up:
    - Call Back Later
    - Awaiting Parent Decision
  Callback:
    - Busy
    - Asked To Reschedule
  Not Reachable:
    - Switched Off
    - Wrong Number
    - No Answer
`

// LoadDispositionCatalog reads the catalog from path. A missing file is not
// an error; the built-in defaults apply.
func LoadDispositionCatalog(path string) (*DispositionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultCatalog()
		}
		return nil, fmt.Errorf("read disposition catalog: %w", err)
	}

	var catalog DispositionCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse disposition catalog: %w", err)
	}
	if len(catalog.SubDispositions) == 0 {
		return defaultCatalog()
	}
	return &catalog, nil
}

func defaultCatalog() (*DispositionCatalog, error) {
	var catalog DispositionCatalog
	if err := yaml.Unmarshal([]byte(defaultCatalogYAML), &catalog); err != nil {
		return nil, fmt.Errorf("parse built-in disposition catalog: %w", err)
	}
	return &catalog, nil
}

// DefaultDispositionCatalog returns the built-in catalog
func DefaultDispositionCatalog() *DispositionCatalog {
	catalog, _ := defaultCatalog()
	return catalog
}

// Contains reports whether label is a valid sub-disposition for disposition
func (c *DispositionCatalog) Contains(disposition models.Disposition, label string) bool {
	for _, known := range c.SubDispositions[string(disposition)] {
		if known == label {
			return true
		}
	}
	return false
}

// Labels returns the sub-disposition labels allowed for a disposition
func (c *DispositionCatalog) Labels(disposition models.Disposition) []string {
	return c.SubDispositions[string(disposition)]
}
