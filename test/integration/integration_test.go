//go:build integration

// Package integration runs the godog feature suite against a full
// in-process server.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/lifeledger/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1, // scenarios share one sqlite database
		Strict:      true,
		TestingT:    t,
		Tags:        os.Getenv("GODOG_TAGS"),
	}

	suite := godog.TestSuite{
		Name:                 "lifeledger-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
