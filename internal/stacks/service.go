// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapplicationautoscaling"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecr"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecspatterns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awselasticloadbalancingv2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"

	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/log"
	"github.com/eduka3d/infra/internal/secrets"
)

// ServiceStack owns the ECS cluster and the load-balanced web service.
type ServiceStack struct {
	awscdk.Stack
	Service awsecspatterns.ApplicationLoadBalancedFargateService
}

// NewServiceStack declares the Fargate service: image from ECR, container
// secrets assembled from Parameter Store, task-role access to the parameter
// namespace and the assets bucket, CPU autoscaling, and a /healthz health
// check. The database accepts connections from the service's security group.
func NewServiceStack(
	scope awscdk.App,
	p Props,
	vpc awsec2.Vpc,
	db *DatabaseStack,
	bucket awss3.Bucket,
) (*ServiceStack, error) {
	stack := awscdk.NewStack(scope, stackName(p.Env, "service"),
		stackProps(p.Env, "Eduka3D web service"))

	prod := IsProduction(p.Env)

	namespace, _ := config.GetString("namespace", "eduka3d")
	imageRepo, _ := config.GetString("image_repo", "eduka3d/web")
	imageTag, _ := config.GetString("image_tag", "latest")
	containerPort, _ := config.GetInt("container_port", 8000)
	cpu, _ := config.GetInt("cpu", 256)
	memory, _ := config.GetInt("memory", 512)

	defaultDesired := 1
	if prod {
		defaultDesired = 2
	}
	desired, _ := config.GetInt("desired_count", defaultDesired)
	minCount, _ := config.GetInt("min_count", desired)
	maxCount, _ := config.GetInt("max_count", desired*2)

	cluster := awsecs.NewCluster(stack, jsii.String("Cluster"), &awsecs.ClusterProps{
		Vpc:               vpc,
		ContainerInsights: jsii.Bool(prod),
	})

	asm := &secrets.Assembler[awsecs.Secret]{
		Namespace:   namespace,
		Environment: p.Env,
		Source:      NewParameterSource(stack),
	}

	result, err := asm.Assemble(secrets.DefaultTable())
	if err != nil {
		return nil, fmt.Errorf("assemble secrets: %w", err)
	}
	log.Infof("container secrets assembled: resolved=%d, skipped=%d",
		len(result.References), len(result.Skipped))

	repo := awsecr.Repository_FromRepositoryName(stack, jsii.String("AppRepo"), jsii.String(imageRepo))

	svc := awsecspatterns.NewApplicationLoadBalancedFargateService(stack, jsii.String("Web"),
		&awsecspatterns.ApplicationLoadBalancedFargateServiceProps{
			Cluster:            cluster,
			Cpu:                jsii.Number(float64(cpu)),
			MemoryLimitMiB:     jsii.Number(float64(memory)),
			DesiredCount:       jsii.Number(float64(desired)),
			PublicLoadBalancer: jsii.Bool(true),
			TaskImageOptions: &awsecspatterns.ApplicationLoadBalancedTaskImageOptions{
				Image:         awsecs.ContainerImage_FromEcrRepository(repo, jsii.String(imageTag)),
				ContainerPort: jsii.Number(float64(containerPort)),
				Environment: &map[string]*string{
					"APP_ENV":       jsii.String(p.Env),
					"PORT":          jsii.String(fmt.Sprintf("%d", containerPort)),
					"ASSETS_BUCKET": bucket.BucketName(),
				},
				Secrets: &result.References,
			},
		})

	svc.TargetGroup().ConfigureHealthCheck(&awselasticloadbalancingv2.HealthCheck{
		Path:             jsii.String("/healthz"),
		HealthyHttpCodes: jsii.String("200"),
	})

	// The task role reads its own parameter namespace at runtime; the
	// execution role gets equivalent grants from the secret references above.
	taskDef := svc.TaskDefinition()
	taskDef.AddToTaskRolePolicy(PolicyStatement(stack, asm.ReadParametersStatement()))
	taskDef.AddToTaskRolePolicy(PolicyStatement(stack, secrets.DecryptStatement()))

	bucket.GrantReadWrite(taskDef.TaskRole(), nil)
	db.Instance.Connections().AllowDefaultPortFrom(svc.Service(), jsii.String("web service to database"))

	scaling := svc.Service().AutoScaleTaskCount(&awsapplicationautoscaling.EnableScalingProps{
		MinCapacity: jsii.Number(float64(minCount)),
		MaxCapacity: jsii.Number(float64(maxCount)),
	})
	scaling.ScaleOnCpuUtilization(jsii.String("CpuScaling"), &awsecs.CpuUtilizationScalingProps{
		TargetUtilizationPercent: jsii.Number(60),
		ScaleInCooldown:          awscdk.Duration_Seconds(jsii.Number(120)),
		ScaleOutCooldown:         awscdk.Duration_Seconds(jsii.Number(60)),
	})

	return &ServiceStack{Stack: stack, Service: svc}, nil
}
