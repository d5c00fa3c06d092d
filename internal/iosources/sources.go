// Package iosources loads the sources.yaml registry of auxiliary
// source files.
package iosources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hpdb/hpdb/pkg/config"
	"github.com/hpdb/hpdb/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath, s.cfg.HomeDir)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

func loadSourcesConfig(
	path, homeDir string,
) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}

	// Expand leading ~ in source paths.
	for i := range res.Sources {
		res.Sources[i].Path = expandHome(res.Sources[i].Path, homeDir)
	}

	return &res, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
