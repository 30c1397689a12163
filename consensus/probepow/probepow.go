// Copyright 2017 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package probepow is the default consensus Strategy wired into an Epoch: a
// proof-of-work engine that verifies a header's sealed difficulty and nonce
// against the target implied by the difficulty the seal claims. It does not
// mine and does not implement the hashing scheme the real PoW function would
// use; its job ends at checking that the seal a producer already attached is
// plausible, the same narrow contract chain.Strategy.Verify promises every
// epoch.
package probepow

import (
	"encoding/binary"
	"math/big"

	lru "github.com/hashicorp/golang-lru"

	"github.com/probeum/go-probeum/chain"
	"github.com/probeum/go-probeum/consensus"
	"github.com/probeum/go-probeum/core/types"
	"github.com/probeum/go-probeum/crypto"
	"github.com/probeum/go-probeum/log"
)

// verifiedCacheSize bounds how many recently accepted header ids the engine
// remembers, so a header verified once (e.g. as both a block header and
// later as an uncle's historical header) isn't rehashed every time.
const verifiedCacheSize = 1024

// maxTarget is the PoW search space ceiling, matching the 256-bit digest
// produced by Keccak256.
var maxTarget = new(big.Int).Lsh(big.NewInt(1), 256)

// SealData is the consensus-specific payload a block producer packs into
// Header.Extra before broadcasting a block: the claimed proof-of-work
// difficulty and the nonce that was searched for it.
type SealData struct {
	Difficulty *big.Int
	Nonce      uint64
}

// EncodeSealData packs s into the flat binary layout Header.Extra carries:
// an 8-byte big-endian nonce followed by the minimal big-endian difficulty.
func EncodeSealData(s SealData) []byte {
	buf := make([]byte, 8, 8+len(s.Difficulty.Bytes()))
	binary.BigEndian.PutUint64(buf, s.Nonce)
	return append(buf, s.Difficulty.Bytes()...)
}

// DecodeSealData is the inverse of EncodeSealData.
func DecodeSealData(extra []byte) (SealData, error) {
	if len(extra) < 8 {
		return SealData{}, consensus.ErrInvalidSealData
	}
	nonce := binary.BigEndian.Uint64(extra[:8])
	difficulty := new(big.Int).SetBytes(extra[8:])
	return SealData{Difficulty: difficulty, Nonce: nonce}, nil
}

// Config tunes an Engine.
type Config struct {
	// MinDifficulty rejects any header claiming less than this, regardless
	// of what the seal's digest would otherwise satisfy.
	MinDifficulty *big.Int
	Log           *log.Logger
}

// Engine is a chain.Strategy backed by a simplified PoW check.
type Engine struct {
	config   Config
	verified *lru.ARCCache
	log      *log.Logger
}

// New builds a probepow Engine from config, filling in defaults for zero
// values the same way the teacher's consensus engines do.
func New(config Config) *Engine {
	if config.MinDifficulty == nil {
		config.MinDifficulty = big.NewInt(1)
	}
	if config.Log == nil {
		config.Log = log.Root().New("engine", "probepow")
	}
	cache, err := lru.NewARC(verifiedCacheSize)
	if err != nil {
		panic("probepow: failed to allocate verified-header cache: " + err.Error())
	}
	return &Engine{config: config, verified: cache, log: config.Log}
}

// Verify implements chain.Strategy. It decodes the header's seal data,
// checks the claimed difficulty against the configured floor, and checks the
// header id's digest against the target implied by that difficulty.
func (e *Engine) Verify(reader chain.ChainReader, header *types.Header) error {
	id := header.Id()
	if _, ok := e.verified.Get(id); ok {
		return nil
	}

	seal, err := DecodeSealData(header.Extra)
	if err != nil {
		return &chain.ConsensusVerifyError{Err: err}
	}
	if seal.Difficulty == nil || seal.Difficulty.Sign() <= 0 {
		return &chain.ConsensusVerifyError{Err: consensus.ErrInvalidDifficulty}
	}
	if seal.Difficulty.Cmp(e.config.MinDifficulty) < 0 {
		e.log.Debug("probepow: difficulty below floor", "number", header.Number, "have", seal.Difficulty, "want", e.config.MinDifficulty)
		return &chain.ConsensusVerifyError{Err: consensus.ErrInvalidDifficulty}
	}

	target := new(big.Int).Div(maxTarget, seal.Difficulty)
	digest := crypto.Keccak256Hash(id.Bytes())
	if new(big.Int).SetBytes(digest.Bytes()).Cmp(target) > 0 {
		e.log.Debug("probepow: seal above target", "number", header.Number, "hash", id)
		return &chain.ConsensusVerifyError{Err: consensus.ErrInvalidPoW}
	}

	e.verified.Add(id, struct{}{})
	return nil
}
