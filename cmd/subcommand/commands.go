// Copyright (c) 2025 Visvasity LLC

package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/visvasity/subcommand"
)

func registerCommands(reg *subcommand.Registry) {
	reg.RegisterFunc("hello", "Prints hello world", hello)
	reg.RegisterFunc("foo", "Prints foo", foo)
	reg.RegisterFunc("print", "Print next word in new line", printWords)
	reg.RegisterFunc("rev", "Print each word reversed", reverseWords)
}

func hello(ctx context.Context, args []string) (subcommand.ExitCode, error) {
	fmt.Fprintln(subcommand.Output(ctx), "Hello world")
	return subcommand.ExitSuccess, nil
}

func foo(ctx context.Context, args []string) (subcommand.ExitCode, error) {
	fmt.Fprintln(subcommand.Output(ctx), "foo")
	return subcommand.ExitSuccess, nil
}

func printWords(ctx context.Context, args []string) (subcommand.ExitCode, error) {
	if len(args) == 0 {
		return subcommand.ExitUsage, errors.New("nothing to print")
	}
	for _, arg := range args {
		fmt.Fprintln(subcommand.Output(ctx), arg)
	}
	return subcommand.ExitSuccess, nil
}

func reverseWords(ctx context.Context, args []string) (subcommand.ExitCode, error) {
	if len(args) == 0 {
		return subcommand.ExitUsage, errors.New("nothing to reverse")
	}
	for _, arg := range args {
		r := []rune(arg)
		slices.Reverse(r)
		fmt.Fprintln(subcommand.Output(ctx), string(r))
	}
	return subcommand.ExitSuccess, nil
}
