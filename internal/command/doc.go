// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: synth (the CDK entry point),
// preflight (live Parameter Store check), outline (cloud assembly summary),
// and shell completion.
package command
