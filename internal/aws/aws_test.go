// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithProfile verifies that WithProfile sets the profile option
// correctly.
func TestWithProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{
			name:     "empty profile",
			profile:  "",
			expected: "",
		},
		{
			name:     "default profile",
			profile:  "default",
			expected: "default",
		},
		{
			name:     "custom profile",
			profile:  "eduka3d-prod",
			expected: "eduka3d-prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithProfile(tt.profile)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.profile)
		})
	}
}

// TestWithRegion verifies that WithRegion sets the region option correctly.
func TestWithRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{
			name:     "empty region",
			region:   "",
			expected: "",
		},
		{
			name:     "us-east-1",
			region:   "us-east-1",
			expected: "us-east-1",
		},
		{
			name:     "eu-west-1",
			region:   "eu-west-1",
			expected: "eu-west-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithRegion(tt.region)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.region)
		})
	}
}

// TestWithRetryer verifies that WithRetryer stores the retryer factory.
func TestWithRetryer(t *testing.T) {
	var opts options
	newRetryer := func() awsv2.Retryer {
		return retry.NewStandard()
	}

	opt := WithRetryer(newRetryer)
	opt(&opts)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

// TestLoadAWSConfigWithRegion verifies that a region override sticks without
// needing live credentials.
func TestLoadAWSConfigWithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-east-2", cfg.Region)
}

// TestNewSSM verifies that a client can be constructed from a bare config.
func TestNewSSM(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewSSM(cfg)
	assert.NotNil(t, client)
}
