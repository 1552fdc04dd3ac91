/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package file contains types specific to the file-based configuration
// provider. These represent the raw YAML structure before resolution.
package file

// Config represents the raw YAML configuration file structure
type Config struct {
	Project   string               `yaml:"project"`
	Region    string               `yaml:"region"`
	Directory string               `yaml:"directory"`
	Templates map[string]*Template `yaml:"templates"`
}

// Template represents template configuration as it appears in YAML
type Template struct {
	Path         string                 `yaml:"path"`
	Parameters   map[string]string      `yaml:"parameters"`
	Variables    map[string]interface{} `yaml:"variables"`
	Dependencies []string               `yaml:"depends_on"`
}
