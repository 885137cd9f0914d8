package main

import (
	"github.com/asisaga/erpnext-mcp/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
