// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avromock

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Source supplies the two randomness primitives every generator draws from.
type Source interface {
	// Float64 returns a pseudo-random number in [0,1).
	Float64() float64
	// UUID returns a UUID-shaped string.
	UUID() string
}

type defaultSource struct{}

// DefaultSource returns the unseeded source backed by the process-wide
// PRNG and random (version 4) UUIDs.
func DefaultSource() Source {
	return defaultSource{}
}

func (defaultSource) Float64() float64 { return rand.Float64() }

func (defaultSource) UUID() string { return uuid.NewString() }

// seededSource is a deterministic source. Float64 and UUID both advance the
// same PCG stream, so the output depends only on the seed and the order in
// which values are requested.
type seededSource struct {
	rng       *rand.Rand
	namespace uuid.UUID
}

// seedNamespace scopes the version 5 UUIDs of every seeded source.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dacolabs/avromock/seed"))

// NewSeededSource returns a deterministic source for seed. UUIDs are
// version 5, named by draws from the seeded stream within a seed-derived
// namespace.
func NewSeededSource(seed int64) Source {
	return &seededSource{
		rng:       rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)), //nolint:gosec // not used for security
		namespace: uuid.NewSHA1(seedNamespace, []byte(strconv.FormatInt(seed, 10))),
	}
}

func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *seededSource) UUID() string {
	var name [8]byte
	binary.BigEndian.PutUint64(name[:], s.rng.Uint64())
	return uuid.NewSHA1(s.namespace, name[:]).String()
}
