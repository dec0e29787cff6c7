// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/log"
)

// Props carries the per-invocation inputs shared by all stacks. Everything
// else comes from the loaded configuration, namespaced by Env.
type Props struct {
	Env string
}

// IsProduction reports whether an environment tag gets production defaults
// (Multi-AZ database, deletion protection, retained resources, two NAT
// gateways).
func IsProduction(env string) bool {
	return env == "prod"
}

// Build constructs all stacks for one environment into app. Stacks are wired
// in dependency order: network feeds database and service, storage and
// database feed service.
func Build(app awscdk.App, p Props) error {
	if p.Env == "" {
		return fmt.Errorf("environment tag must not be empty")
	}
	log.Infof("building stacks: env=%s", p.Env)

	net := NewNetworkStack(app, p)
	sto := NewStorageStack(app, p)
	db := NewDatabaseStack(app, p, net.Vpc)

	if _, err := NewServiceStack(app, p, net.Vpc, db, sto.Bucket); err != nil {
		return fmt.Errorf("service stack: %w", err)
	}

	return nil
}

// stackName renders the canonical <app>-<env>-<role> stack name.
func stackName(env, role string) *string {
	return jsii.String(fmt.Sprintf("eduka3d-%s-%s", env, role))
}

// stackProps builds common StackProps: target account/region from config
// (omitted when unset, leaving the stack environment-agnostic) and standard
// tags.
func stackProps(env, description string) *awscdk.StackProps {
	props := &awscdk.StackProps{
		Description: jsii.String(description),
		Tags: &map[string]*string{
			"app": jsii.String("eduka3d"),
			"env": jsii.String(env),
		},
	}

	account, _ := config.GetString("account", "")
	region, _ := config.GetString("region", "")
	if account != "" && region != "" {
		props.Env = &awscdk.Environment{
			Account: jsii.String(account),
			Region:  jsii.String(region),
		}
	}

	return props
}
