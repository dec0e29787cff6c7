// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package stacks

import (
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka3d/infra/internal/config"
)

// setupEnv points the loader at the testdata config and loads it under the
// given environment namespace.
func setupEnv(t *testing.T, env string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", "infra.yaml"))
	require.NoError(t, err)

	t.Setenv("INFRA_CFG_FILE", absPath)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	_, err = config.Load(env)
	require.NoError(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction("prod"))
	assert.False(t, IsProduction("dev"))
	assert.False(t, IsProduction("staging"))
	assert.False(t, IsProduction(""))
}

func TestBuildEmptyEnv(t *testing.T) {
	setupEnv(t, "dev")

	app := awscdk.NewApp(nil)
	assert.Error(t, Build(app, Props{Env: ""}))
}

func TestNetworkStack(t *testing.T) {
	setupEnv(t, "dev")

	app := awscdk.NewApp(nil)
	net := NewNetworkStack(app, Props{Env: "dev"})
	template := assertions.Template_FromStack(net.Stack, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::VPC"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::EC2::NatGateway"), jsii.Number(1))
}

func TestNetworkStackProdNat(t *testing.T) {
	setupEnv(t, "prod")

	app := awscdk.NewApp(nil)
	net := NewNetworkStack(app, Props{Env: "prod"})
	template := assertions.Template_FromStack(net.Stack, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::NatGateway"), jsii.Number(2))
}

func TestStorageStackRemoval(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantPolicy string
	}{
		{name: "dev bucket is destroyable", env: "dev", wantPolicy: "Delete"},
		{name: "prod bucket is retained", env: "prod", wantPolicy: "Retain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t, tt.env)

			app := awscdk.NewApp(nil)
			sto := NewStorageStack(app, Props{Env: tt.env})
			template := assertions.Template_FromStack(sto.Stack, nil)

			template.HasResource(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
				"DeletionPolicy": tt.wantPolicy,
			})
		})
	}
}

func TestDatabaseStack(t *testing.T) {
	setupEnv(t, "prod")

	app := awscdk.NewApp(nil)
	net := NewNetworkStack(app, Props{Env: "prod"})
	db := NewDatabaseStack(app, Props{Env: "prod"}, net.Vpc)
	template := assertions.Template_FromStack(db.Stack, nil)

	template.ResourceCountIs(jsii.String("AWS::RDS::DBInstance"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::RDS::DBInstance"), map[string]interface{}{
		"Engine":             "postgres",
		"MultiAZ":            true,
		"DeletionProtection": true,
	})
}

func TestServiceStack(t *testing.T) {
	setupEnv(t, "dev")

	app := awscdk.NewApp(nil)
	p := Props{Env: "dev"}
	net := NewNetworkStack(app, p)
	sto := NewStorageStack(app, p)
	db := NewDatabaseStack(app, p, net.Vpc)

	svc, err := NewServiceStack(app, p, net.Vpc, db, sto.Bucket)
	require.NoError(t, err)

	template := assertions.Template_FromStack(svc.Stack, nil)
	template.ResourceCountIs(jsii.String("AWS::ECS::Cluster"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ECS::Service"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ECS::TaskDefinition"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ElasticLoadBalancingV2::LoadBalancer"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ApplicationAutoScaling::ScalableTarget"), jsii.Number(1))
}

func TestBuild(t *testing.T) {
	setupEnv(t, "dev")

	app := awscdk.NewApp(nil)
	require.NoError(t, Build(app, Props{Env: "dev"}))

	assembly := app.Synth(nil)
	assert.NotNil(t, assembly)
}
