package main

import "github.com/ngss-tools/ngss-mcp/cmd/ngss-cli/cmd"

func main() {
	cmd.Execute()
}
