// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package stacks declares the CDK stacks for one Eduka3D environment:
// network (VPC), storage (assets bucket), database (RDS PostgreSQL), and
// service (ECS Fargate behind an ALB, wired to Parameter Store secrets).
package stacks
