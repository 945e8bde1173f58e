// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// opKind enumerates the list operations the workload can issue.
type opKind int

const (
	opPushFront opKind = iota
	opPushBack
	opPopFront
	opPopBack
	opInsert
	opRemove
	opGet
	opFind
	numOps
)

var opNames = [numOps]string{
	opPushFront: "push-front",
	opPushBack:  "push-back",
	opPopFront:  "pop-front",
	opPopBack:   "pop-back",
	opInsert:    "insert",
	opRemove:    "remove",
	opGet:       "get",
	opFind:      "find",
}

var opKindByName = func() map[string]opKind {
	m := make(map[string]opKind, numOps)
	for kind, name := range opNames {
		m[name] = opKind(kind)
	}
	return m
}()

// opMix holds the sampling weights for each op kind.
type opMix struct {
	weights [numOps]int
	cum     [numOps]int
	total   int
}

func newOpMix(weights map[string]int) (*opMix, error) {
	m := &opMix{}
	for name, w := range weights {
		kind, ok := opKindByName[name]
		if !ok {
			return nil, errors.Newf("unknown op %q", name)
		}
		if w < 0 {
			return nil, errors.Newf("negative weight %d for op %q", w, name)
		}
		m.weights[kind] = w
	}
	total := 0
	for kind := opKind(0); kind < numOps; kind++ {
		total += m.weights[kind]
		m.cum[kind] = total
	}
	if total == 0 {
		return nil, errors.New("op mix has no positive weights")
	}
	m.total = total
	return m, nil
}

// parseMix builds an opMix from comma separated op=weight pairs, e.g.
// "push-back=30,pop-front=20".
func parseMix(s string) (*opMix, error) {
	weights := make(map[string]int)
	for _, part := range strings.Split(s, ",") {
		name, val, found := strings.Cut(part, "=")
		if !found {
			return nil, errors.Newf("malformed mix entry %q", part)
		}
		w, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing weight in %q", part)
		}
		weights[strings.TrimSpace(name)] = w
	}
	return newOpMix(weights)
}

// sample picks an op kind according to the mix weights.
func (m *opMix) sample(rng *rand.Rand) opKind {
	r := rng.Intn(m.total)
	for kind := opKind(0); kind < numOps; kind++ {
		if r < m.cum[kind] {
			return kind
		}
	}
	panic("cumulative weights out of sync with total")
}

// profile is the schema of the YAML file behind --profile.
type profile struct {
	Ops     map[string]int `yaml:"ops"`
	Initial int            `yaml:"initial"`
}

// loadProfile reads an op mix and an initial list size from a YAML file.
func loadProfile(path string) (*opMix, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, 0, errors.Wrapf(err, "parsing profile %s", path)
	}
	m, err := newOpMix(p.Ops)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "profile %s", path)
	}
	return m, p.Initial, nil
}
