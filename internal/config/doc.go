// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the per-environment YAML configuration (infra.yaml)
// and exposes typed getters with environment-namespace fallback.
package config
