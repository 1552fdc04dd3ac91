/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
project: payments
region: us-east-1
templates:
  network:
    path: network.template
  app:
    path: app.template
    parameters:
      InstanceType: t3.micro
    variables:
      az_count: 2
    depends_on:
      - network
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "jetstream.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestLoadConfig_ResolvesTemplates(t *testing.T) {
	filename := writeConfig(t, sampleConfig)
	provider := NewProvider(filename)

	cfg, err := provider.LoadConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "payments", cfg.Project)
	assert.Equal(t, "us-east-1", cfg.Region)
	require.Len(t, cfg.Templates, 2)

	// sorted by name
	assert.Equal(t, "app", cfg.Templates[0].Name)
	assert.Equal(t, "network", cfg.Templates[1].Name)
	assert.Equal(t, []string{"network"}, cfg.Templates[0].Dependencies)
	assert.Equal(t, map[string]string{"InstanceType": "t3.micro"}, cfg.Templates[0].Parameters)
}

func TestLoadConfig_RelativePathsAnchoredAtConfigDir(t *testing.T) {
	filename := writeConfig(t, sampleConfig)
	provider := NewProvider(filename)

	cfg, err := provider.LoadConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(filename), "app.template"), cfg.Templates[0].Path)
}

func TestLoadConfig_DirectoryOverridesAnchor(t *testing.T) {
	filename := writeConfig(t, "directory: /srv/templates\ntemplates:\n  network:\n    path: network.template\n")
	provider := NewProvider(filename)

	cfg, err := provider.LoadConfig(context.Background())

	require.NoError(t, err)
	require.Len(t, cfg.Templates, 1)
	assert.Equal(t, filepath.Join("/srv/templates", "network.template"), cfg.Templates[0].Path)
}

func TestGetTemplate_UnknownName(t *testing.T) {
	filename := writeConfig(t, sampleConfig)
	provider := NewProvider(filename)

	_, err := provider.GetTemplate("missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template 'missing' not found")
}

func TestListTemplates_Sorted(t *testing.T) {
	filename := writeConfig(t, sampleConfig)
	provider := NewProvider(filename)

	names, err := provider.ListTemplates()

	require.NoError(t, err)
	assert.Equal(t, []string{"app", "network"}, names)
}

func TestValidate_UndefinedDependency(t *testing.T) {
	filename := writeConfig(t, "templates:\n  app:\n    path: app.template\n    depends_on: [network]\n")
	provider := NewProvider(filename)

	err := provider.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "depends on undefined template 'network'")
}

func TestValidate_MissingPath(t *testing.T) {
	filename := writeConfig(t, "templates:\n  app: {}\n")
	provider := NewProvider(filename)

	err := provider.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no path")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := provider.LoadConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
