package instance

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mholt/archives"
	"github.com/rmohr/dhskernel/pkg/api"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// LoadInstanceFile reads an instance from a YAML or JSON file. Compressed files (gzip, xz, zstd, ...)
// are decompressed transparently.
func LoadInstanceFile(file string) (*api.Instance, error) {
	data, err := readFile(file)
	if err != nil {
		return nil, err
	}
	instance := &api.Instance{}
	if err := yaml.Unmarshal(data, instance); err != nil {
		return nil, fmt.Errorf("failed to parse instance file %s: %v", file, err)
	}
	return instance, nil
}

// LoadInstance reads an instance file and builds the hypergraph from it.
func LoadInstance(file string) (*hypergraph.Instance, *api.Instance, error) {
	instance, err := LoadInstanceFile(file)
	if err != nil {
		return nil, nil, err
	}
	h, err := hypergraph.FromAPI(instance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return h, instance, nil
}

func WriteInstanceFile(file string, instance *api.Instance) error {
	return writeYAML(file, instance)
}

func LoadResultFile(file string) (*api.Result, error) {
	data, err := readFile(file)
	if err != nil {
		return nil, err
	}
	result := &api.Result{}
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %v", file, err)
	}
	return result, nil
}

func WriteResultFile(file string, result *api.Result) error {
	return writeYAML(file, result)
}

func writeYAML(file string, obj interface{}) error {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0660)
}

func readFile(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", file, err)
	}
	defer f.Close()

	format, stream, err := archives.Identify(context.Background(), file, f)
	if err != nil {
		// not a known compression format, read the file as it is
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind file %s: %v", file, err)
		}
		return io.ReadAll(f)
	}
	decompressor, ok := format.(archives.Decompressor)
	if !ok {
		return nil, fmt.Errorf("file %s is a %s archive, expected a single compressed file", file, format.Extension())
	}
	logrus.Debugf("decompressing %s as %s", file, format.Extension())
	reader, err := decompressor.OpenReader(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress file %s: %v", file, err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
