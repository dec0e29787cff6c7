// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package secrets

// DefaultTable is the parameter table for the Eduka3D web application. Each
// entry maps one container environment variable to its Parameter Store key.
// Keys are bare, so they resolve under the target environment's namespace.
func DefaultTable() []Spec {
	return []Spec{
		{EnvVar: "DATABASE_URL", Path: "DATABASE_URL", Kind: KindEncrypted, Required: true},
		{EnvVar: "SECRET_KEY", Path: "SECRET_KEY", Kind: KindEncrypted, Required: true},
		{EnvVar: "REDIS_URL", Path: "REDIS_URL", Kind: KindPlainText, Required: true},
		{EnvVar: "SMTP_HOST", Path: "SMTP_HOST", Kind: KindPlainText, Required: true},
		{EnvVar: "SMTP_USER", Path: "SMTP_USER", Kind: KindPlainText, Required: true},
		{EnvVar: "SMTP_PASSWORD", Path: "SMTP_PASSWORD", Kind: KindEncrypted, Required: true},
		{EnvVar: "STRIPE_API_KEY", Path: "STRIPE_API_KEY", Kind: KindEncrypted, Required: false},
		{EnvVar: "SENTRY_DSN", Path: "SENTRY_DSN", Kind: KindPlainText, Required: false},
		// Shared across environments; absolute on purpose.
		{EnvVar: "MODEL_CDN_TOKEN", Path: "/eduka3d/shared/MODEL_CDN_TOKEN", Kind: KindEncrypted, Required: false},
	}
}
