// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/eduka3d/infra/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the environment tag the invocation
// targets.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Env     string
}
