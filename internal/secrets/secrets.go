// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eduka3d/infra/internal/log"
)

// Kind describes how a parameter is stored in Parameter Store. It is
// informational for the assembly pass; nothing downstream enforces it.
type Kind string

const (
	// KindPlainText is a standard String parameter.
	KindPlainText Kind = "plaintext"
	// KindEncrypted is a SecureString parameter.
	KindEncrypted Kind = "encrypted"
)

// Spec describes one parameter to expose to the running container.
//
// Path is either a bare key (namespaced under /<namespace>/<environment>/) or
// an absolute path containing "/", which is passed through unchanged. The
// absolute form is the escape hatch for cross-namespace references.
type Spec struct {
	// EnvVar is the environment variable name exposed to the container.
	EnvVar string
	// Path is the bare key or absolute parameter path.
	Path string
	// Kind records how the parameter is stored.
	Kind Kind
	// Required controls how loudly a missing parameter is reported. A missing
	// required parameter logs a warning; a missing optional one only logs at
	// debug. Neither aborts assembly.
	Required bool
}

// ErrParameterNotFound is returned by a Source when no parameter exists at
// the resolved path. Any other Source error aborts the assembly pass.
var ErrParameterNotFound = errors.New("parameter not found")

// Source resolves a parameter path to an opaque runtime reference R. The
// reference points at the secret; the value itself is fetched by the
// container runtime at launch, never here.
type Source[R any] interface {
	Resolve(spec Spec, path string) (R, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[R any] func(spec Spec, path string) (R, error)

// Resolve implements Source.
func (f SourceFunc[R]) Resolve(spec Spec, path string) (R, error) {
	return f(spec, path)
}

// Skip records one spec that was left out of the assembled mapping and why.
type Skip struct {
	Spec Spec
	Err  error
}

// Result is the outcome of one assembly pass. References holds the
// successfully resolved handles keyed by environment variable; Skipped holds
// everything that was left out, so callers can assert on outcomes instead of
// scraping log output.
type Result[R any] struct {
	References map[string]R
	Skipped    []Skip
}

// Assembler resolves parameter specs for one environment. Namespace and
// Environment feed both path resolution and the read policy, so the two
// cannot drift apart.
type Assembler[R any] struct {
	Namespace   string
	Environment string
	Source      Source[R]
}

// ResolvePath returns the Parameter Store path for one spec. A Path
// containing "/" is treated as already absolute and returned unchanged;
// otherwise the key is namespaced as /<namespace>/<environment>/<key>.
//
// The environment tag is not validated; unexpected characters propagate into
// the path as-is.
func (a *Assembler[R]) ResolvePath(spec Spec) string {
	if strings.Contains(spec.Path, "/") {
		return spec.Path
	}
	return fmt.Sprintf("/%s/%s/%s", a.Namespace, a.Environment, spec.Path)
}

// Assemble runs one pass over specs. Each spec is resolved in order; on
// success its reference lands in Result.References under spec.EnvVar, with
// later duplicates overwriting earlier ones. A not-found outcome is recorded
// in Result.Skipped and never aborts the pass: required specs log a warning,
// optional specs log at debug. Any other Source error aborts with that error.
func (a *Assembler[R]) Assemble(specs []Spec) (Result[R], error) {
	result := Result[R]{References: make(map[string]R, len(specs))}

	for _, spec := range specs {
		path := a.ResolvePath(spec)
		log.Tracef("resolving parameter: env_var=%s, path=%s", spec.EnvVar, path)

		ref, err := a.Source.Resolve(spec, path)
		if err != nil {
			if !errors.Is(err, ErrParameterNotFound) {
				return Result[R]{}, fmt.Errorf("resolve %s: %w", path, err)
			}
			if spec.Required {
				log.Warnf("required parameter not found, container will start without %s: path=%s", spec.EnvVar, path)
			} else {
				log.Debugf("optional parameter not found: env_var=%s, path=%s", spec.EnvVar, path)
			}
			result.Skipped = append(result.Skipped, Skip{Spec: spec, Err: err})
			continue
		}

		result.References[spec.EnvVar] = ref
	}

	return result, nil
}

// SecretsMap is the mapping view of Assemble: just the resolved references,
// keyed by environment variable, with skipped entries absent.
func (a *Assembler[R]) SecretsMap(specs []Spec) (map[string]R, error) {
	result, err := a.Assemble(specs)
	if err != nil {
		return nil, err
	}
	return result.References, nil
}
