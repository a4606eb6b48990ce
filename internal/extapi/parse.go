// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package extapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parser decodes an extension API dump from an io.Reader.
type Parser struct {
	parse func(io.Reader) (*API, error)
}

// JSON parses extension_api.json documents. Godot only emits the dump as
// JSON, but the Parser indirection keeps the door open for other encodings.
var JSON = Parser{parseJSON}

// Parse decodes an API dump from r and validates the minimum structure the
// generator relies on.
func (p Parser) Parse(r io.Reader) (*API, error) {
	api, err := p.parse(r)
	if err != nil {
		return nil, err
	}

	if api.Header.VersionMajor == 0 {
		return nil, errors.New("missing header: not an extension API dump")
	}
	for _, class := range api.Classes {
		if class.Name == "" {
			return nil, errors.New("class with empty name in API dump")
		}
	}

	return api, nil
}

func parseJSON(r io.Reader) (*API, error) {
	var api API
	dec := json.NewDecoder(r)
	if err := dec.Decode(&api); err != nil {
		return nil, fmt.Errorf("failed to decode extension API: %w", err)
	}
	return &api, nil
}

// EngineVersion returns the dump's engine version as "major.minor.patch".
func (a *API) EngineVersion() string {
	return fmt.Sprintf("%d.%d.%d", a.Header.VersionMajor, a.Header.VersionMinor, a.Header.VersionPatch)
}
