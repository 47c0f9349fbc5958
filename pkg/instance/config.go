package instance

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/rmohr/dhskernel/pkg/api/dhskernel"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

const configFile = "dhskernel/config.yaml"

// LoadConfig reads the config file at path. An empty path searches dhskernel/config.yaml in the
// XDG config directories and falls back to the defaults if none exists.
func LoadConfig(path string) (*dhskernel.Config, error) {
	config := dhskernel.DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			logrus.Debugf("no config file found, using defaults: %v", err)
			return config, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	switch config.Backend {
	case dhskernel.BackendBacktrack, dhskernel.BackendSAT:
	default:
		return nil, fmt.Errorf("unknown backend %q in %s, expected %s or %s", config.Backend, path, dhskernel.BackendBacktrack, dhskernel.BackendSAT)
	}
	switch config.WBound {
	case dhskernel.WBoundSquare, dhskernel.WBoundDegree:
	default:
		return nil, fmt.Errorf("unknown wBound %q in %s, expected %s or %s", config.WBound, path, dhskernel.WBoundSquare, dhskernel.WBoundDegree)
	}
	return config, nil
}
