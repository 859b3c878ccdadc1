package ehr

import (
	"github.com/metriport/ehr-sync/sources"
)

type adapterBase struct {
	source sources.Source
	client Client
}

func (a adapterBase) Source() sources.Source {
	return a.source
}

func (a adapterBase) Client() Client {
	return a.client
}
