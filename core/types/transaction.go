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

package types

import (
	"math/big"

	"github.com/probeum/go-probeum/common"
	"github.com/probeum/go-probeum/rlp"
)

// Transaction is a signed transaction as it appears inside a block body. The
// verifier core only ever inspects the sender; execution and pool admission
// live outside this package.
type Transaction struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *common.Address
	Value    *big.Int
	Data     []byte
	V, R, S  *big.Int

	from common.Address
}

// NewTransaction builds a transaction from its sender's perspective. Senders
// are attached directly rather than recovered from a signature, since
// signature recovery is outside the verifier's responsibility.
func NewTransaction(from common.Address, nonce uint64, to *common.Address, value *big.Int, gas uint64, gasPrice *big.Int, data []byte) *Transaction {
	return &Transaction{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       to,
		Value:    value,
		Data:     common.CopyBytes(data),
		from:     from,
	}
}

// Sender returns the address that authored the transaction.
func (tx *Transaction) Sender() common.Address { return tx.from }

// SetSender attaches the sender address, for callers that obtained it
// separately from the signature values.
func (tx *Transaction) SetSender(addr common.Address) { tx.from = addr }

// Hash returns the content hash of the transaction.
func (tx *Transaction) Hash() common.Hash {
	enc, err := rlp.EncodeToBytes(tx)
	if err != nil {
		panic("types: failed to encode transaction: " + err.Error())
	}
	return common.BytesToHash(hash(enc))
}

// Transactions is an ordered list of transactions; rlp encodes it as a list.
type Transactions []*Transaction
