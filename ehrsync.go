package main

import (
	"github.com/metriport/ehr-sync/api"
)

func main() {
	api.MainLoop()
}
