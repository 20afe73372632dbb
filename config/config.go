// Package config defines the JSON description of a probe layout and turns it into a built
// octree.
package config

import (
	"fmt"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/lightprobe/octree"
	"go.viam.com/lightprobe/probe"
)

// A Config describes a set of probe groups, how the octree over them is tuned, and optionally a
// list of positions to query once it is built.
type Config struct {
	ConfigFilePath string `json:"-"`

	Octree      OctreeConfig       `json:"octree"`
	ProbeGroups []ProbeGroupConfig `json:"probe_groups"`
	Queries     []r3.Vector        `json:"queries,omitempty"`
}

// OctreeConfig holds the octree tunables. Unset values keep the octree defaults.
type OctreeConfig struct {
	MaxDepth      *int `json:"max_depth,omitempty"`
	MaxLeafProbes *int `json:"max_leaf_probes,omitempty"`
}

// ProbeGroupConfig is one regular grid of probes.
type ProbeGroupConfig struct {
	Name    string     `json:"name,omitempty"`
	Extent  *r3.Vector `json:"extent"`
	Density float64    `json:"density"`
	Origin  r3.Vector  `json:"origin"`
}

// Validate ensures all parts of the config are valid. path prefixes the field paths in errors and
// may be empty for a top level config.
func (conf *Config) Validate(path string) error {
	var errs error
	if len(conf.ProbeGroups) == 0 {
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "probe_groups"))
	}
	if err := conf.Octree.Validate(joinPath(path, "octree")); err != nil {
		errs = multierr.Append(errs, err)
	}
	for idx, group := range conf.ProbeGroups {
		if err := group.Validate(fmt.Sprintf("%s.%d", joinPath(path, "probe_groups"), idx)); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Validate ensures all parts of the config are valid.
func (conf *OctreeConfig) Validate(path string) error {
	var errs error
	if conf.MaxDepth != nil && *conf.MaxDepth < 0 {
		errs = multierr.Append(errs,
			utils.NewConfigValidationError(path, errors.Errorf("max_depth (%d) must not be negative", *conf.MaxDepth)))
	}
	if conf.MaxLeafProbes != nil && *conf.MaxLeafProbes < 1 {
		errs = multierr.Append(errs,
			utils.NewConfigValidationError(path, errors.Errorf("max_leaf_probes (%d) must be at least 1", *conf.MaxLeafProbes)))
	}
	return errs
}

// Validate ensures all parts of the config are valid.
func (conf *ProbeGroupConfig) Validate(path string) error {
	var errs error
	if conf.Extent == nil {
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "extent"))
	} else if conf.Extent.X < 0 || conf.Extent.Y < 0 || conf.Extent.Z < 0 {
		errs = multierr.Append(errs,
			utils.NewConfigValidationError(path, errors.Errorf("extent %v must not be negative", *conf.Extent)))
	}
	switch {
	case conf.Density == 0:
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "density"))
	case conf.Density < 0:
		errs = multierr.Append(errs,
			utils.NewConfigValidationError(path, errors.Errorf("density (%.4f) must be positive", conf.Density)))
	}
	return errs
}

// NewOctree registers every probe group of the config and builds an octree over them.
func (conf *Config) NewOctree(logger golog.Logger) (*octree.ProbeOctree, error) {
	if err := conf.Validate(""); err != nil {
		return nil, err
	}
	oct, err := octree.New(probe.NewRegistry(), logger)
	if err != nil {
		return nil, err
	}
	if conf.Octree.MaxDepth != nil {
		if err := oct.SetMaxDepth(*conf.Octree.MaxDepth); err != nil {
			return nil, err
		}
	}
	if conf.Octree.MaxLeafProbes != nil {
		if err := oct.SetMaxLeafProbes(*conf.Octree.MaxLeafProbes); err != nil {
			return nil, err
		}
	}
	for idx, group := range conf.ProbeGroups {
		if err := oct.RegisterProbeGroup(*group.Extent, group.Density, group.Origin); err != nil {
			return nil, errors.Wrapf(err, "failed to register probe group %s", group.label(idx))
		}
		logger.Debugw("registered probe group", "group", group.label(idx), "probes", oct.Probes().Size())
	}
	if err := oct.Build(); err != nil {
		return nil, err
	}
	return oct, nil
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func (conf *ProbeGroupConfig) label(idx int) string {
	if conf.Name != "" {
		return fmt.Sprintf("%q", conf.Name)
	}
	return fmt.Sprintf("%d", idx)
}
