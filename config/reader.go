package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// Read reads a config from the given file. Environment variables in the file are expanded before
// it is decoded.
func Read(filePath string, logger golog.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger golog.Logger) (*Config, error) {
	conf := Config{
		ConfigFilePath: originalPath,
	}
	if err := json.NewDecoder(r).Decode(&conf); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := conf.Validate(""); err != nil {
		return nil, errors.Wrapf(err, "failed to validate Config")
	}
	logger.Debugw("read probe config", "path", originalPath, "groups", len(conf.ProbeGroups), "queries", len(conf.Queries))
	return &conf, nil
}
