package generator

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"gopkg.in/yaml.v3"
)

// checkArtifact rejects data artifacts that would not parse for their
// consumer. Source files are not checked.
func checkArtifact(p string, content []byte) error {
	switch path.Ext(p) {
	case ".json":
		if !json.Valid(content) {
			return fmt.Errorf("%w: %s is not valid JSON", domain.ErrInvalidArtifact, p)
		}
	case ".yml", ".yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, p, err)
		}
	}
	return nil
}
