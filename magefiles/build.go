//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the hbnb console using Mage.
//
// Usage:
//
//	mage build      Compile a static hbnb binary to bin/
//	mage test:all   Run every test with the race detector
//	mage test:unit  Run every test without the race detector
//	mage test:cover Write a coverage profile to bin/
//	mage lint       Run go vet and golangci-lint
//	mage clean      Remove bin/ and the build cache entries
//	mage install    go install the console
//	mage stats      Print Go line counts as JSON
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "hbnb"
	binaryDir  = "bin"
	cmdDir     = "./cmd/hbnb"
)

// staticEnv disables cgo; the console has no C dependencies.
var staticEnv = map[string]string{"CGO_ENABLED": "0"}

// Build writes a trimmed, cgo-free hbnb binary to bin/hbnb.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binaryDir, binaryName)
	return sh.RunWithV(staticEnv, binGo, "build", "-trimpath", "-o", out, cmdDir)
}

// Install runs go install on the console package, so the binary lands in
// GOBIN or GOPATH/bin.
func Install() error {
	return sh.RunWithV(staticEnv, binGo, "install", "-trimpath", cmdDir)
}

// Clean removes bin/ (binary and coverage profile) and cleans the package.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean", cmdDir)
}
