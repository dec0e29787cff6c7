// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package stacks

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/eduka3d/infra/internal/secrets"
)

// parameterSource resolves parameter paths to ECS secret handles by
// declaring Parameter Store references on the given scope. The secret value
// is fetched by the container runtime at task launch, not during synthesis.
type parameterSource struct {
	scope constructs.Construct
	seq   int
}

// NewParameterSource returns a secrets.Source that binds references under
// scope. One source per stack; construct IDs are sequenced to stay unique
// even when specs share an environment variable name.
func NewParameterSource(scope constructs.Construct) secrets.Source[awsecs.Secret] {
	return &parameterSource{scope: scope}
}

// Resolve implements secrets.Source. The spec's kind selects the plain or
// secure-string parameter reference.
func (s *parameterSource) Resolve(spec secrets.Spec, path string) (awsecs.Secret, error) {
	if !strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return nil, fmt.Errorf("%s: %w", path, secrets.ErrParameterNotFound)
	}

	s.seq++
	id := jsii.String(fmt.Sprintf("Param%d%s", s.seq, spec.EnvVar))

	var param awsssm.IStringParameter
	if spec.Kind == secrets.KindEncrypted {
		param = awsssm.StringParameter_FromSecureStringParameterAttributes(s.scope, id,
			&awsssm.SecureStringParameterAttributes{
				ParameterName: jsii.String(path),
			})
	} else {
		param = awsssm.StringParameter_FromStringParameterName(s.scope, id, jsii.String(path))
	}

	return awsecs.Secret_FromSsmParameter(param), nil
}

// PolicyStatement adapts a secrets.Statement to an IAM policy statement on
// stack. Parameter path patterns (leading "/") are rendered as SSM parameter
// ARNs in the stack's partition, account, and region; anything else ("*")
// passes through.
func PolicyStatement(stack awscdk.Stack, st secrets.Statement) awsiam.PolicyStatement {
	actions := make([]*string, 0, len(st.Actions))
	for _, a := range st.Actions {
		actions = append(actions, jsii.String(a))
	}

	resources := make([]*string, 0, len(st.Resources))
	for _, r := range st.Resources {
		if strings.HasPrefix(r, "/") {
			// SSM parameter ARNs carry the path without its leading slash.
			resources = append(resources, stack.FormatArn(&awscdk.ArnComponents{
				Service:      jsii.String("ssm"),
				Resource:     jsii.String("parameter"),
				ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
				ResourceName: jsii.String(strings.TrimPrefix(r, "/")),
			}))
			continue
		}
		resources = append(resources, jsii.String(r))
	}

	effect := awsiam.Effect_ALLOW
	if st.Effect != secrets.EffectAllow {
		effect = awsiam.Effect_DENY
	}

	return awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   &actions,
		Resources: &resources,
		Effect:    effect,
	})
}
