// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command defaults to synth",
			args:     []string{"infra"},
			expected: []string{"infra", "synth"},
		},
		{
			name:     "explicit command untouched",
			args:     []string{"infra", "preflight"},
			expected: []string{"infra", "preflight"},
		},
		{
			name:     "command with flags untouched",
			args:     []string{"infra", "synth", "--env", "prod"},
			expected: []string{"infra", "synth", "--env", "prod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "long flag",
			args: []string{"infra", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"infra", "-v"},
			want: true,
		},
		{
			name: "flag after command",
			args: []string{"infra", "synth", "--version"},
			want: true,
		},
		{
			name: "no flag",
			args: []string{"infra", "synth"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
