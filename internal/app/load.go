package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/fsutil"
	"github.com/specialistvlad/fleetgrid/internal/hcl"
	"github.com/specialistvlad/fleetgrid/internal/yaml"
)

// LoaderFor picks the scenario loader matching path. Files are matched by
// extension: YAML for .yaml and .yml, HCL for everything else. A directory
// goes to the YAML loader when it holds YAML files and no HCL files, and to
// the HCL loader otherwise.
func LoaderFor(path string) config.Loader {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if isYAMLDir(path) {
			return yaml.NewLoader()
		}
		return hcl.NewLoader()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}

// isYAMLDir reports whether dir contains YAML scenario files and no HCL
// files. Walk errors are left to the loader to report.
func isYAMLDir(dir string) bool {
	hclFiles, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil || len(hclFiles) > 0 {
		return false
	}
	yamlFiles, err := fsutil.FindFilesByExtension(dir, ".yaml", ".yml")
	return err == nil && len(yamlFiles) > 0
}
