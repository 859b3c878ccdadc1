package ehr

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/metriport/ehr-sync/sources"
)

// Endpoints holds the wire configuration of every source, loaded from the
// environment with a METRIPORT_EHR_<SOURCE> prefix per source.
type Endpoints struct {
	configs map[sources.Source]ClientConfig
}

func NewEndpoints() (*Endpoints, error) {
	endpoints := &Endpoints{configs: map[sources.Source]ClientConfig{}}
	for _, source := range sources.All() {
		cfg := ClientConfig{}
		prefix := fmt.Sprintf("METRIPORT_EHR_%s", strings.ToUpper(string(source)))
		if err := envconfig.Process(prefix, &cfg); err != nil {
			return nil, fmt.Errorf("unable to load %s endpoint config: %w", source, err)
		}
		cfg.Source = source
		endpoints.configs[source] = cfg
	}
	return endpoints, nil
}

func (e *Endpoints) Get(source sources.Source) ClientConfig {
	return e.configs[source.Base()]
}

// NewDefaultRegistry wires every source to its adapter over the shared HTTP
// client.
func NewDefaultRegistry(endpoints *Endpoints) (*Registry, error) {
	return NewRegistry([]Adapter{
		NewAthenaAdapter(NewHTTPClient(endpoints.Get(sources.Athena))),
		NewCanvasAdapter(NewHTTPClient(endpoints.Get(sources.Canvas))),
		NewElationAdapter(NewHTTPSubscriptionClient(endpoints.Get(sources.Elation))),
		NewHealthieAdapter(NewHTTPSubscriptionClient(endpoints.Get(sources.Healthie))),
		NewEpicAdapter(NewHTTPClient(endpoints.Get(sources.Epic))),
		NewSalesforceAdapter(NewHTTPClient(endpoints.Get(sources.Salesforce))),
		NewTouchWorksAdapter(NewHTTPClient(endpoints.Get(sources.TouchWorks))),
		NewEClinicalWorksAdapter(NewHTTPClient(endpoints.Get(sources.EClinicalWorks))),
	})
}
