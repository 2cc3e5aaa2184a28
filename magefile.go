//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the pairgen binary into bin/.
func Build() error {
	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/pairgen/internal/version.Version=%s "+
			"-X github.com/dkoosis/pairgen/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/pairgen/internal/version.BuildDate=%s",
		gitDescribe(), gitCommit(), time.Now().UTC().Format(time.RFC3339),
	)
	return sh.Run("go", "build", "-ldflags", ldflags, "-o", "bin/pairgen", "./cmd/pairgen")
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint then tests.
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}

func gitDescribe() string {
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil {
		return v
	}
	return "dev"
}

func gitCommit() string {
	if v, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil {
		return v
	}
	return "unknown"
}
