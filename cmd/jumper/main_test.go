package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	defer func(prev string) { flagLogLevel = prev }(flagLogLevel)

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, expected warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.Warn("shown", "score", 10)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output: %q", out)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(&buf, "test"); err == nil {
		t.Error("newLogger() should reject unknown levels")
	}
}

func TestCheckFPS(t *testing.T) {
	defer func(prev int) { flagFPS = prev }(flagFPS)

	for _, fps := range []int{1, 60, 1000} {
		flagFPS = fps
		if err := checkFPS(); err != nil {
			t.Errorf("checkFPS(%d) = %v, expected nil", fps, err)
		}
	}
	for _, fps := range []int{0, -5, 1001} {
		flagFPS = fps
		if err := checkFPS(); err == nil {
			t.Errorf("checkFPS(%d) should fail", fps)
		}
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	defer func(prev string) { flagConfig = prev }(flagConfig)

	flagConfig = t.TempDir() + "/missing.yaml"
	if _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() should fail for a missing file")
	}
}
