// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence for
// ContaBancaria. It uses Viper for file/env/flag parsing and writes the
// default file with goccy/go-yaml.
package config
