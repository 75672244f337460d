//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "vymova"

// Default target to run when none is specified
var Default = Build

// Build builds the vymova binary
func Build() error {
	fmt.Println("Building vymova...")
	return sh.RunV("go", "build", "-o", binary, "./cmd/vymova")
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs vymova into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/vymova")
}

// Run transcribes the texts given in $TEXT
func Run() error {
	mg.Deps(Build)
	text := os.Getenv("TEXT")
	if text == "" {
		return fmt.Errorf("set TEXT, e.g. TEXT='ма́ма' mage run")
	}
	return sh.RunV(filepath.Join(".", binary), text)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
