// Copyright 2014 The go-probeum Authors
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

// Package types contains the data types the block verification core reads
// and produces: headers, bodies, transactions and blocks.
package types

import (
	"github.com/probeum/go-probeum/common"
	"github.com/probeum/go-probeum/rlp"
)

// ALLOWED_FUTURE_BLOCKTIME is the maximum number of milliseconds a header's
// timestamp is allowed to sit ahead of the local clock before it is rejected
// as "too new". Must match across every node on the network.
const ALLOWED_FUTURE_BLOCKTIME uint64 = 30_000

// ChainType distinguishes a classic single-parent chain from one that has
// switched over to DAG-shaped blocks with multiple parents.
type ChainType uint8

const (
	ChainTypeSingle ChainType = iota
	ChainTypeDag
)

func (t ChainType) String() string {
	if t == ChainTypeDag {
		return "dag"
	}
	return "single"
}

// Header represents a block header. Id is the Keccak256 hash of every other
// field and is computed, never stored on the wire twice.
type Header struct {
	ParentHash  common.Hash   `json:"parentHash"`
	ParentsHash []common.Hash `json:"parentsHash,omitempty"`
	Number      uint64        `json:"number"`
	Time        uint64        `json:"timestamp"` // milliseconds since the Unix epoch
	BodyHash    common.Hash   `json:"bodyHash"`
	GasUsed     uint64        `json:"gasUsed"`

	BlockAccumulatorRoot common.Hash `json:"blockAccumulatorRoot"`
	TxnAccumulatorRoot   common.Hash `json:"txnAccumulatorRoot"`

	// Extra carries consensus-strategy specific sealing data (difficulty,
	// nonce, validator signature, ...). Opaque to the verifier core itself.
	Extra []byte `json:"extra,omitempty"`
}

// Id returns the content hash that uniquely identifies this header.
func (h *Header) Id() common.Hash {
	enc, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic("types: failed to encode header: " + err.Error())
	}
	return common.BytesToHash(hash(enc))
}

// Hash is an alias for Id kept for readers coming from the header.Hash()
// convention used elsewhere in the codebase.
func (h *Header) Hash() common.Hash { return h.Id() }

// CopyHeader creates a deep copy of a header so that mutating the copy never
// affects the original.
func CopyHeader(h *Header) *Header {
	cpy := *h
	if len(h.ParentsHash) > 0 {
		cpy.ParentsHash = make([]common.Hash, len(h.ParentsHash))
		copy(cpy.ParentsHash, h.ParentsHash)
	}
	if len(h.Extra) > 0 {
		cpy.Extra = common.CopyBytes(h.Extra)
	}
	return &cpy
}

// IsDagHeader reports whether the header declares a non-empty ParentsHash
// list, i.e. is DAG-shaped, even when that list holds a single parent.
func (h *Header) IsDagHeader() bool {
	return len(h.ParentsHash) > 0
}
