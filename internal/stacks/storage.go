// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"
)

// StorageStack owns the assets bucket (course models, uploads, exports).
type StorageStack struct {
	awscdk.Stack
	Bucket awss3.Bucket
}

// NewStorageStack declares the assets bucket: versioned, SSE-S3 encrypted,
// fully private, TLS-only. Prod retains the bucket on stack deletion;
// other environments destroy and empty it.
func NewStorageStack(scope awscdk.App, p Props) *StorageStack {
	stack := awscdk.NewStack(scope, stackName(p.Env, "storage"),
		stackProps(p.Env, "Eduka3D storage layer"))

	removal := awscdk.RemovalPolicy_DESTROY
	autoDelete := true
	if IsProduction(p.Env) {
		removal = awscdk.RemovalPolicy_RETAIN
		autoDelete = false
	}

	bucket := awss3.NewBucket(stack, jsii.String("Assets"), &awss3.BucketProps{
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		EnforceSSL:        jsii.Bool(true),
		Versioned:         jsii.Bool(true),
		RemovalPolicy:     removal,
		AutoDeleteObjects: jsii.Bool(autoDelete),
	})

	awscdk.NewCfnOutput(stack, jsii.String("AssetsBucketName"), &awscdk.CfnOutputProps{
		Value: bucket.BucketName(),
	})

	return &StorageStack{Stack: stack, Bucket: bucket}
}
