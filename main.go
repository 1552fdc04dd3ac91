/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/rackerlabs/jetstream/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.RootCommand()); err != nil {
		os.Exit(1)
	}
}
