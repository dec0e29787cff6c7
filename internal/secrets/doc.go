// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package secrets assembles the container-secret wiring for one environment:
// it resolves parameter specs to Parameter Store paths, collects runtime
// references keyed by environment variable, and produces the IAM statements
// that let the task read its own parameter namespace.
//
// The package is deliberately free of CDK types. The reference handle is a
// type parameter, so the same assembly semantics run under tests with plain
// values and under synthesis with awsecs.Secret handles.
package secrets
