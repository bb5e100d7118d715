//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const templDir = "./pkg/web"

// Generate runs templ generate for the page components.
// Run it after editing any .templ file.
func Generate() error {
	if _, err := exec.LookPath("templ"); err != nil {
		fmt.Println(">> templ not found; install with:")
		fmt.Println("   go install github.com/a-h/templ/cmd/templ@v0.3.943")
		return err
	}
	fmt.Println(">> templ generate", templDir)
	return sh.Run("templ", "generate", "-path", templDir)
}

// Build generates templates, tidies deps, then compiles the server and leadctl into ./bin.
func Build() error {
	mg.Deps(Generate, Tidy)
	fmt.Println(">> Building server binary...")
	if err := sh.Run("go", "build", "-o", "bin/coming-soon", "."); err != nil {
		return err
	}
	fmt.Println(">> Building leadctl...")
	return sh.Run("go", "build", "-o", "bin/leadctl", "./cmd/leadctl")
}

// Run builds then executes the server binary.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server...")
	return sh.Run("./bin/coming-soon")
}

// Dev starts the server via go run with debug logging.
func Dev() error {
	fmt.Println(">> Dev mode: go run . ...")
	cmd := exec.Command("go", "run", ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "GIN_MODE=debug", "LOG_LEVEL=debug", "LOG_FORMAT=text")
	return cmd.Run()
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println(">> Cleaning...")
	return os.RemoveAll("bin")
}

// Install installs leadctl to $GOPATH/bin.
func Install() error {
	return sh.Run("go", "install", "./cmd/leadctl")
}

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
