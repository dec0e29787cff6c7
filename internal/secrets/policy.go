// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package secrets

import "fmt"

// Effect is the allow/deny disposition of a Statement.
type Effect string

// EffectAllow is the only effect this package emits.
const EffectAllow Effect = "Allow"

// Statement is a plain IAM-shaped value object: actions, resource patterns,
// effect. It carries no identity beyond its fields; the stack layer adapts it
// to a provider policy statement.
type Statement struct {
	Actions   []string
	Resources []string
	Effect    Effect
}

// ReadParametersStatement grants read access to the assembler's parameter
// namespace. The resource pattern is derived from the same Namespace and
// Environment values that ResolvePath uses, so the grant always covers
// exactly the paths the assembly produces.
func (a *Assembler[R]) ReadParametersStatement() Statement {
	return Statement{
		Actions: []string{
			"ssm:GetParameter",
			"ssm:GetParameters",
			"ssm:GetParametersByPath",
		},
		Resources: []string{
			fmt.Sprintf("/%s/%s/*", a.Namespace, a.Environment),
		},
		Effect: EffectAllow,
	}
}

// DecryptStatement grants the KMS access needed to read SecureString
// parameters. The wildcard resource is deliberately broad; narrow it to the
// parameter key's ARN per deployment if the account policy demands it.
func DecryptStatement() Statement {
	return Statement{
		Actions: []string{
			"kms:Decrypt",
			"kms:DescribeKey",
		},
		Resources: []string{"*"},
		Effect:    EffectAllow,
	}
}
