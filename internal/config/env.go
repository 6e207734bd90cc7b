// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Nested groups are resolved through their `envPrefix` tags, so
// the MinIO bucket is read from STORAGE_MEDIA_MINIO_BUCKET.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. a malformed duration or size).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
