package main

import (
	"bytes"
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"testing"
)

func TestVersionFrom(t *testing.T) {
	tests := []struct {
		name string
		info debug.BuildInfo
		want string
	}{
		{"installed", debug.BuildInfo{Main: debug.Module{Version: "v0.2.0"}}, "v0.2.0"},
		{"checkout", debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
		}, "devel-0.1.0+0123456"},
		{"no vcs", debug.BuildInfo{}, "devel-0.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionFrom("0.1.0", &tt.info); got != tt.want {
				t.Errorf("versionFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		verbose int
		level   slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, tt := range tests {
		logger := newLogger(&bytes.Buffer{}, tt.verbose)
		ctx := context.Background()
		if !logger.Enabled(ctx, tt.level) || logger.Enabled(ctx, tt.level-1) {
			t.Errorf("newLogger(%d) does not log from %v", tt.verbose, tt.level)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	if err := (&VersionCmd{}).Run(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "0.1.0") && !strings.HasPrefix(out.String(), "v") {
		t.Errorf("version output = %q", out.String())
	}
}
