package config

import (
	"github.com/leeforge/imagefit/filter"
)

// LoadFilter reads the "filter" section of the configuration and returns it
// with defaults applied and struct tags validated. Hosts typically follow up
// with filter.New.
func LoadFilter(optsArr ...Options) (filter.Config, error) {
	var root struct {
		Filter filter.Config `mapstructure:"filter"`
	}

	c, err := New(optsArr...)
	if err != nil {
		return root.Filter, err
	}

	if err := c.BindWithDefaults(&root); err != nil {
		return root.Filter, err
	}

	if err := Validate(&root.Filter); err != nil {
		return root.Filter, err
	}

	return root.Filter, nil
}
