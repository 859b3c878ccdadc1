package main

import (
	"github.com/metriport/ehr-sync/cmd/ehrsync/command"
)

func main() {
	command.Execute()
}
