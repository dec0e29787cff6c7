// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws contains AWS SDK helpers used by commands that talk to live
// accounts, currently the Parameter Store preflight check.
package aws
