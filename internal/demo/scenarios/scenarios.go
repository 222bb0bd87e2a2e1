package scenarios

import (
	"github.com/zhubert/dialogo/internal/demo"
	perrors "github.com/zhubert/dialogo/internal/errors"
)

// All returns every built-in scenario in display order.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Recording,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Lookup is Get with a KindNotFound error for unknown names.
func Lookup(name string) (*demo.Scenario, error) {
	if s := Get(name); s != nil {
		return s, nil
	}
	return nil, perrors.ScenarioNotFound(name)
}
