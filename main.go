// Package main is the entry point for the kinotree application.
package main

import (
	"github.com/kinotree/kinotree/cmd"
	"github.com/kinotree/kinotree/config"
	"github.com/kinotree/kinotree/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
