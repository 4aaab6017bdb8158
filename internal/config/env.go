// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables according to the `env` and
// `envPrefix` tags on [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading env configuration: %w", err)
	}

	return nil
}
