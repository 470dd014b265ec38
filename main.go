package main

import "github.com/MNThomson/datadog-cli/internal/cmd"

func main() {
	cmd.Execute()
}
