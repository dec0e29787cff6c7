// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/jsii-runtime-go"

	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/log"
)

// NetworkStack owns the VPC the rest of the environment lives in.
type NetworkStack struct {
	awscdk.Stack
	Vpc awsec2.Vpc
}

// NewNetworkStack declares the VPC: two AZs, public subnets for the load
// balancer and NAT, private-with-egress subnets for tasks and the database.
// Prod defaults to one NAT gateway per AZ; everything else shares one.
func NewNetworkStack(scope awscdk.App, p Props) *NetworkStack {
	stack := awscdk.NewStack(scope, stackName(p.Env, "network"),
		stackProps(p.Env, "Eduka3D network layer"))

	cidr, _ := config.GetString("cidr", "10.0.0.0/16")
	maxAzs, _ := config.GetInt("max_azs", 2)

	defaultNat := 1
	if IsProduction(p.Env) {
		defaultNat = maxAzs
	}
	natGateways, _ := config.GetInt("nat_gateways", defaultNat)
	log.Debugf("network layout: cidr=%s, azs=%d, nat=%d", cidr, maxAzs, natGateways)

	vpc := awsec2.NewVpc(stack, jsii.String("Vpc"), &awsec2.VpcProps{
		IpAddresses: awsec2.IpAddresses_Cidr(jsii.String(cidr)),
		MaxAzs:      jsii.Number(float64(maxAzs)),
		NatGateways: jsii.Number(float64(natGateways)),
		SubnetConfiguration: &[]*awsec2.SubnetConfiguration{
			{
				Name:       jsii.String("public"),
				SubnetType: awsec2.SubnetType_PUBLIC,
				CidrMask:   jsii.Number(24),
			},
			{
				Name:       jsii.String("private"),
				SubnetType: awsec2.SubnetType_PRIVATE_WITH_EGRESS,
				CidrMask:   jsii.Number(24),
			},
		},
	})

	return &NetworkStack{Stack: stack, Vpc: vpc}
}
