package sources

import (
	"fmt"
	"strings"

	"github.com/metriport/ehr-sync/errors"
)

// Source identifies an external EHR system. The set is closed: every
// consumer that dispatches on a Source is validated against All at startup.
type Source string

const (
	Athena         Source = "athena"
	Canvas         Source = "canvas"
	Elation        Source = "elation"
	Healthie       Source = "healthie"
	Epic           Source = "epic"
	Salesforce     Source = "salesforce"
	TouchWorks     Source = "touchworks"
	EClinicalWorks Source = "eclinicalworks"
)

const dashSuffix = "-dash"

func All() []Source {
	return []Source{
		Athena,
		Canvas,
		Elation,
		Healthie,
		Epic,
		Salesforce,
		TouchWorks,
		EClinicalWorks,
	}
}

func (s Source) IsValid() bool {
	for _, known := range All() {
		if s == known {
			return true
		}
	}
	return false
}

// Dash returns the dashboard variant of the source, used as the source tag
// of tokens issued through the embedded dashboard flow.
func (s Source) Dash() Source {
	return s + dashSuffix
}

func (s Source) IsDash() bool {
	return strings.HasSuffix(string(s), dashSuffix)
}

func (s Source) Base() Source {
	return Source(strings.TrimSuffix(string(s), dashSuffix))
}

func (s Source) String() string {
	return string(s)
}

func Parse(raw string) (Source, error) {
	source := Source(raw).Base()
	if !source.IsValid() {
		return "", fmt.Errorf("%w: unsupported source %q", errors.BadRequest, raw)
	}
	return Source(raw), nil
}
