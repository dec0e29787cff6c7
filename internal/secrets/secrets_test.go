// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package secrets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSource resolves every path to itself, simulating a store where
// everything exists.
func echoSource() Source[string] {
	return SourceFunc[string](func(_ Spec, path string) (string, error) {
		return path, nil
	})
}

// missingSource fails every lookup with ErrParameterNotFound.
func missingSource() Source[string] {
	return SourceFunc[string](func(_ Spec, path string) (string, error) {
		return "", fmt.Errorf("%s: %w", path, ErrParameterNotFound)
	})
}

func newAssembler(src Source[string]) *Assembler[string] {
	return &Assembler[string]{
		Namespace:   "eduka3d",
		Environment: "prod",
		Source:      src,
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name string
		env  string
		spec Spec
		want string
	}{
		{
			name: "bare key is namespaced",
			env:  "prod",
			spec: Spec{EnvVar: "DB_PASS", Path: "DB_PASS"},
			want: "/eduka3d/prod/DB_PASS",
		},
		{
			name: "bare key other environment",
			env:  "staging",
			spec: Spec{EnvVar: "DB_PASS", Path: "DB_PASS"},
			want: "/eduka3d/staging/DB_PASS",
		},
		{
			name: "absolute path passes through",
			env:  "prod",
			spec: Spec{EnvVar: "TOKEN", Path: "/eduka3d/shared/TOKEN"},
			want: "/eduka3d/shared/TOKEN",
		},
		{
			name: "relative path with separator passes through",
			env:  "prod",
			spec: Spec{EnvVar: "TOKEN", Path: "other/TOKEN"},
			want: "other/TOKEN",
		},
		{
			name: "environment tag is not validated",
			env:  "pr od",
			spec: Spec{EnvVar: "X", Path: "X"},
			want: "/eduka3d/pr od/X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Assembler[string]{Namespace: "eduka3d", Environment: tt.env}
			assert.Equal(t, tt.want, a.ResolvePath(tt.spec))
		})
	}
}

func TestAssembleAllResolved(t *testing.T) {
	a := newAssembler(echoSource())

	result, err := a.Assemble([]Spec{
		{EnvVar: "DB_PASS", Path: "DB_PASS", Required: true},
		{EnvVar: "API_KEY", Path: "API_KEY", Required: false},
	})
	require.NoError(t, err)

	assert.Len(t, result.References, 2)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "/eduka3d/prod/DB_PASS", result.References["DB_PASS"])
	assert.Equal(t, "/eduka3d/prod/API_KEY", result.References["API_KEY"])
}

func TestAssembleMissingParameters(t *testing.T) {
	tests := []struct {
		name     string
		required bool
	}{
		{name: "required missing is skipped not fatal", required: true},
		{name: "optional missing is skipped not fatal", required: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAssembler(missingSource())

			result, err := a.Assemble([]Spec{
				{EnvVar: "DB_PASS", Path: "DB_PASS", Required: tt.required},
			})
			require.NoError(t, err)

			assert.Empty(t, result.References)
			require.Len(t, result.Skipped, 1)
			assert.Equal(t, "DB_PASS", result.Skipped[0].Spec.EnvVar)
			assert.Equal(t, tt.required, result.Skipped[0].Spec.Required)
			assert.ErrorIs(t, result.Skipped[0].Err, ErrParameterNotFound)
		})
	}
}

func TestAssembleOtherErrorsAbort(t *testing.T) {
	authErr := errors.New("access denied")
	a := newAssembler(SourceFunc[string](func(_ Spec, _ string) (string, error) {
		return "", authErr
	}))

	_, err := a.Assemble([]Spec{{EnvVar: "DB_PASS", Path: "DB_PASS", Required: true}})
	require.Error(t, err)
	assert.ErrorIs(t, err, authErr)
}

func TestAssembleDuplicateEnvVarLastWins(t *testing.T) {
	a := newAssembler(echoSource())

	result, err := a.Assemble([]Spec{
		{EnvVar: "TOKEN", Path: "FIRST", Required: true},
		{EnvVar: "TOKEN", Path: "SECOND", Required: true},
	})
	require.NoError(t, err)

	require.Len(t, result.References, 1)
	assert.Equal(t, "/eduka3d/prod/SECOND", result.References["TOKEN"])
}

func TestAssemblePartialOutcome(t *testing.T) {
	// Only paths under the prod namespace exist.
	a := newAssembler(SourceFunc[string](func(_ Spec, path string) (string, error) {
		if path == "/eduka3d/prod/DB_PASS" {
			return path, nil
		}
		return "", ErrParameterNotFound
	}))

	result, err := a.Assemble([]Spec{
		{EnvVar: "DB_PASS", Path: "DB_PASS", Required: true},
		{EnvVar: "EXTRA", Path: "/eduka3d/shared/EXTRA", Required: false},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"DB_PASS": "/eduka3d/prod/DB_PASS"}, result.References)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "EXTRA", result.Skipped[0].Spec.EnvVar)
}

func TestSecretsMap(t *testing.T) {
	a := newAssembler(echoSource())

	m, err := a.SecretsMap([]Spec{{EnvVar: "DB_PASS", Path: "DB_PASS", Required: true}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"DB_PASS": "/eduka3d/prod/DB_PASS"}, m)
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.NotEmpty(t, table)

	seen := map[string]bool{}
	for _, spec := range table {
		assert.NotEmpty(t, spec.EnvVar)
		assert.NotEmpty(t, spec.Path)
		assert.False(t, seen[spec.EnvVar], "duplicate env var %s", spec.EnvVar)
		seen[spec.EnvVar] = true
	}
}
