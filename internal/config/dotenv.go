// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is the file read by [loadDotEnv] when no path is given.
const DefaultDotEnvPath = ".env"

// loadDotEnv exports the variables of a dotenv file into the process
// environment. Variables that are already set are left untouched, so real
// environment values always win over the file. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = DefaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %s: %w", path, err)
	}

	return nil
}
