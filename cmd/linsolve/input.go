// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linsolve/linalg"
	"gopkg.in/yaml.v3"
)

// systemDoc is one YAML document of a system file. A file may hold several
// documents separated by "---"; each is solved independently.
type systemDoc struct {
	Name   string      `yaml:"name"`
	Matrix [][]float64 `yaml:"matrix"`
	RHS    []float64   `yaml:"rhs"`
}

// productDoc is the multiply input: C = A × B.
type productDoc struct {
	A [][]float64 `yaml:"a"`
	B [][]float64 `yaml:"b"`
}

// readSystems decodes every document in path. Unnamed systems are labelled
// by their position.
func readSystems(path string) ([]systemDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []systemDoc
	dec := yaml.NewDecoder(f)
	for {
		var doc systemDoc
		if err = dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: document %d: %w", path, len(out)+1, err)
		}
		if doc.Name == "" {
			doc.Name = fmt.Sprintf("system-%d", len(out)+1)
		}
		out = append(out, doc)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no systems found", path)
	}

	return out, nil
}

func readProduct(path string) (productDoc, error) {
	var doc productDoc
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// matrix converts the nested rows of a document.
func (d systemDoc) matrix() (*linalg.Dense, error) {
	m, err := linalg.NewDenseFrom(d.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%s: matrix: %w", d.Name, err)
	}

	return m, nil
}
