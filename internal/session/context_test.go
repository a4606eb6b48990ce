// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string // written into a temp dir
		wantErr     error
		wantVersion string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			files:   nil,
			wantErr: ErrNotInitialized,
		},
		{
			name: "invalid config",
			files: map[string]string{
				"gdext.yaml": "version: [",
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "config fails validation",
			files: map[string]string{
				"gdext.yaml": "version: 1\n", // missing api path
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "api dump not found",
			files: map[string]string{
				"gdext.yaml": "version: 1\napi: extension_api.json\n",
			},
			wantErr: ErrAPINotFound,
		},
		{
			name: "api dump malformed",
			files: map[string]string{
				"gdext.yaml":         "version: 1\napi: extension_api.json\n",
				"extension_api.json": "{}",
			},
			wantErr: ErrInvalidAPI,
		},
		{
			name: "valid",
			files: map[string]string{
				"gdext.yaml": "version: 1\napi: extension_api.json\n",
				"extension_api.json": `{
					"header": {"version_major": 4, "version_minor": 2, "version_patch": 0},
					"classes": [{"name": "Node"}]
				}`,
			},
			wantVersion: "4.2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
			}

			origDir, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			defer func() { _ = os.Chdir(origDir) }()

			ctx, err := Load(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			loaded := From(ctx)
			require.NotNil(t, loaded)
			assert.Equal(t, tt.wantVersion, loaded.API.EngineVersion())
			assert.True(t, loaded.Registry.IsEngineClass("Node"))
		})
	}
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
