package engines

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagaforge/saga-api/internal/entities/engine"
	"github.com/sagaforge/saga-api/internal/errors"
)

// LoadFile reads one YAML schema file and registers it
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 // operator-provided schema path
	if err != nil {
		return errors.Wrapf(err, "failed to read engine schema %s", path)
	}

	var s engine.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed engine schema").
			WithMeta("path", path)
	}

	return c.Register(&s)
}

// LoadDir registers every .yaml/.yml schema in a directory. A missing
// directory is not an error; running without custom engines is normal.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read engine schema dir %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
