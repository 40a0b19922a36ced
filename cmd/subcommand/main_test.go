// Copyright (c) 2025 Visvasity LLC

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visvasity/subcommand"
)

const demoUsage = "Usage: subcommand <command> [options]\n" +
	"Commands:\n" +
	"    foo          Prints foo\n" +
	"    hello        Prints hello world\n" +
	"    help         Print help\n" +
	"    print        Print next word in new line\n" +
	"    rev          Print each word reversed\n"

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   subcommand.ExitCode
		wantStdout string
		wantStderr string
	}{
		{
			name:       "usage",
			args:       []string{"subcommand"},
			wantCode:   subcommand.ExitUsage,
			wantStdout: demoUsage,
		},
		{
			name:       "hello",
			args:       []string{"subcommand", "hello"},
			wantCode:   subcommand.ExitSuccess,
			wantStdout: "Hello world\n",
		},
		{
			name:       "foo",
			args:       []string{"subcommand", "foo", "ignored"},
			wantCode:   subcommand.ExitSuccess,
			wantStdout: "foo\n",
		},
		{
			name:       "print",
			args:       []string{"subcommand", "print", "one", "two"},
			wantCode:   subcommand.ExitSuccess,
			wantStdout: "one\ntwo\n",
		},
		{
			name:       "print without words",
			args:       []string{"subcommand", "print"},
			wantCode:   subcommand.ExitUsage,
			wantStderr: "Usage: print - Print next word in new line\nError: nothing to print\n",
		},
		{
			name:       "rev",
			args:       []string{"subcommand", "rev", "abc", "héllo"},
			wantCode:   subcommand.ExitSuccess,
			wantStdout: "cba\nolléh\n",
		},
		{
			name:       "suggestion",
			args:       []string{"subcommand", "prin", "x"},
			wantCode:   subcommand.ExitUsage,
			wantStderr: "May you mean:\n    print\n",
		},
		{
			name:       "not found",
			args:       []string{"subcommand", "launch"},
			wantCode:   subcommand.ExitUsage,
			wantStderr: "Command not found: launch\n" + demoUsage,
		},
		{
			name:       "help",
			args:       []string{"subcommand", "help", "rev"},
			wantCode:   subcommand.ExitSuccess,
			wantStdout: "Usage: rev - Print each word reversed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestRunSingleStream(t *testing.T) {
	t.Setenv("SUBCOMMAND_DISPATCH_SPLIT_STREAMS", "false")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"subcommand", "hell"}, &stdout, &stderr)
	assert.Equal(t, subcommand.ExitUsage, code)
	assert.Equal(t, "May you mean:\n    hello\n    help\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunThresholdFromEnv(t *testing.T) {
	t.Setenv("SUBCOMMAND_DISPATCH_SUGGEST_THRESHOLD", "3")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"subcommand", "rve"}, &stdout, &stderr)
	assert.Equal(t, subcommand.ExitUsage, code)
	assert.Equal(t, "May you mean:\n    rev\n", stderr.String())
}

func TestRunDebugLogging(t *testing.T) {
	t.Setenv("SUBCOMMAND_LOGGER_LEVEL", "debug")
	t.Setenv("SUBCOMMAND_LOGGER_FORMAT", "json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"subcommand", "foo"}, &stdout, &stderr)
	assert.Equal(t, subcommand.ExitSuccess, code)
	assert.Equal(t, "foo\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"dispatching command"`)
	assert.Contains(t, stderr.String(), `"command":"foo"`)
}

func TestRunBadConfig(t *testing.T) {
	t.Setenv("SUBCOMMAND_LOGGER_LEVEL", "loud")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"subcommand", "foo"}, &stdout, &stderr)
	assert.Equal(t, subcommand.ExitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "invalid log level")
}
