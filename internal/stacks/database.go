// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsrds"
	"github.com/aws/jsii-runtime-go"

	"github.com/eduka3d/infra/internal/config"
)

// DatabaseStack owns the PostgreSQL instance backing the web application.
type DatabaseStack struct {
	awscdk.Stack
	Instance awsrds.DatabaseInstance
}

// NewDatabaseStack declares the RDS instance in the private subnets with a
// generated master secret. Prod gets Multi-AZ, deletion protection, and a
// retained instance; other environments run single-AZ and are destroyable.
func NewDatabaseStack(scope awscdk.App, p Props, vpc awsec2.Vpc) *DatabaseStack {
	stack := awscdk.NewStack(scope, stackName(p.Env, "database"),
		stackProps(p.Env, "Eduka3D database layer"))

	prod := IsProduction(p.Env)

	instanceType, _ := config.GetString("db_instance", "t4g.micro")
	allocated, _ := config.GetInt("db_allocated_storage", 20)
	dbName, _ := config.GetString("db_name", "eduka3d")
	multiAz, _ := config.GetBool("multi_az", prod)

	removal := awscdk.RemovalPolicy_DESTROY
	if prod {
		removal = awscdk.RemovalPolicy_RETAIN
	}

	instance := awsrds.NewDatabaseInstance(stack, jsii.String("Postgres"), &awsrds.DatabaseInstanceProps{
		Engine: awsrds.DatabaseInstanceEngine_Postgres(&awsrds.PostgresInstanceEngineProps{
			Version: awsrds.PostgresEngineVersion_VER_16_4(),
		}),
		Vpc: vpc,
		VpcSubnets: &awsec2.SubnetSelection{
			SubnetType: awsec2.SubnetType_PRIVATE_WITH_EGRESS,
		},
		InstanceType:       awsec2.NewInstanceType(jsii.String(instanceType)),
		AllocatedStorage:   jsii.Number(float64(allocated)),
		DatabaseName:       jsii.String(dbName),
		Credentials:        awsrds.Credentials_FromGeneratedSecret(jsii.String("eduka3d"), nil),
		MultiAz:            jsii.Bool(multiAz),
		DeletionProtection: jsii.Bool(prod),
		StorageEncrypted:   jsii.Bool(true),
		RemovalPolicy:      removal,
	})

	awscdk.NewCfnOutput(stack, jsii.String("DatabaseEndpoint"), &awscdk.CfnOutputProps{
		Value: instance.DbInstanceEndpointAddress(),
	})

	return &DatabaseStack{Stack: stack, Instance: instance}
}
