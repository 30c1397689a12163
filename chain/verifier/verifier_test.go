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

package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeum/go-probeum/chain"
	"github.com/probeum/go-probeum/common"
	"github.com/probeum/go-probeum/core/types"
)

var accumulatorRoot = common.HexToHash("0xaccu")

func newHeadAndReader() (*types.Header, *fakeReader) {
	head := &types.Header{Number: 10, ParentHash: common.HexToHash("0xA"), Time: 1000}
	headInfo := &chain.BlockInfo{
		BlockId:              head.Id(),
		BlockAccumulatorInfo: chain.AccumulatorInfo{AccumulatorRoot: accumulatorRoot},
	}
	epoch := chain.NewEpoch(0, 1_000_000, 2, 1_000_000_000, acceptStrategy{})
	reader := newFakeReader(head, headInfo, epoch)
	return head, reader
}

// buildBlock assembles a syntactically consistent candidate block extending
// head: body hash set from txs, block accumulator root carried forward.
func buildBlock(head *types.Header, timestamp uint64, uncles []*types.Header) *types.Block {
	header := &types.Header{
		ParentHash:           head.Id(),
		Number:               head.Number + 1,
		Time:                 timestamp,
		BlockAccumulatorRoot: accumulatorRoot,
	}
	body := &types.Body{}
	header.BodyHash = body.Hash()
	return types.NewBlock(header, nil, uncles)
}

func TestVerifierS1HappyPath(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100, nil)

	vb, err := VerifyBlock(BasicVerifier{}, reader, block)
	require.NoError(t, err)
	assert.Equal(t, block.Id(), vb.Block().Id())
}

func TestVerifierS2StaleTimestamp(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1000, nil)

	_, err := VerifyBlock(BasicVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryHeader)
}

func TestVerifierS3FutureTimestamp(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100+types.ALLOWED_FUTURE_BLOCKTIME+1, nil)

	_, err := VerifyBlock(BasicVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryHeader)
}

func TestVerifierS4BodyHashMismatch(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100, nil)
	to := common.HexToAddress("0xB0B")
	block = types.NewBlock(block.Header(), []*types.Transaction{
		types.NewTransaction(common.HexToAddress("0xFEED"), 0, &to, nil, 0, nil, nil),
	}, nil)

	_, err := VerifyBlock(BasicVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryBody)
}

func TestVerifierS5DuplicateUncles(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}

	uncleParent := &types.Header{Number: 8, Time: 900}
	reader.addAncestor(uncleParent, &chain.BlockInfo{BlockId: uncleParent.Id()})
	uncle := &types.Header{Number: 9, ParentHash: uncleParent.Id(), Time: 950}
	reader.existBlocks[uncle.ParentHash] = true

	block := buildBlock(head, 1100, []*types.Header{uncle, uncle})

	_, err := VerifyBlock(BasicVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryUncle)
}

func TestVerifierS6DagMissingDeclaredParent(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.chainType = types.ChainTypeDag
	reader.time = fakeTimeService{now: 1100}

	p1 := common.HexToHash("0x01")
	p2 := common.HexToHash("0x02")
	reader.existBlocks[p1] = true
	reader.dagBlocks[p1] = true
	reader.blockInfos[p1] = &chain.BlockInfo{BlockId: p1}
	// p2 intentionally missing from dagBlocks.

	header := &types.Header{
		ParentHash:  p1,
		ParentsHash: []common.Hash{p1, p2},
		Number:      head.Number + 1,
		Time:        1100,
	}
	body := &types.Body{}
	header.BodyHash = body.Hash()
	block := types.NewBlock(header, nil, nil)

	_, err := VerifyBlock(DagVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryHeader)
}

func TestBasicVerifierRejectsHeightDiscontinuity(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100, nil)
	header := block.Header()
	header.Number = head.Number + 2
	block = types.NewBlock(header, nil, nil)

	err := (BasicVerifier{}).VerifyHeader(reader, block.Header())
	requireCategory(t, err, chain.CategoryHeader)
}

func TestBasicVerifierRejectsWrongParent(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100, nil)
	header := block.Header()
	header.ParentHash = common.HexToHash("0xWRONG")

	err := (BasicVerifier{}).VerifyHeader(reader, header)
	requireCategory(t, err, chain.CategoryHeader)
}

func TestVerifyUnclesEmptyAtEpochEnd(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.epoch = chain.NewEpoch(0, head.Number+1, 2, 1_000_000_000, acceptStrategy{})
	reader.time = fakeTimeService{now: 1100}

	uncleParent := &types.Header{Number: 8, Time: 900}
	reader.addAncestor(uncleParent, &chain.BlockInfo{BlockId: uncleParent.Id()})
	uncle := &types.Header{Number: 9, ParentHash: uncleParent.Id(), Time: 950}
	reader.existBlocks[uncle.ParentHash] = true

	block := buildBlock(head, 1100, []*types.Header{uncle})

	_, err := VerifyBlock(BasicVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryUncle)
}

func TestConsensusVerifierDowncastsConsensusVerifyError(t *testing.T) {
	head, reader := newHeadAndReader()
	reader.epoch = chain.NewEpoch(0, 1_000_000, 2, 1_000_000_000, rejectStrategy{err: assertErr{"bad seal"}})
	reader.time = fakeTimeService{now: 1100}
	block := buildBlock(head, 1100, nil)

	_, err := VerifyBlock(ConsensusVerifier{}, reader, block)
	requireCategory(t, err, chain.CategoryConsensus)
}

func TestNoneVerifierAcceptsEverything(t *testing.T) {
	head, reader := newHeadAndReader()
	block := buildBlock(head, 1, nil) // stale timestamp, would fail Basic
	_ = reader

	vb := VerifyBlockNone(block)
	require.NotNil(t, vb)
	assert.Equal(t, block.Id(), vb.Block().Id())
}

func TestParseVariantRoundTrips(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseVariant("bogus")
	assert.Error(t, err)
}

func requireCategory(t *testing.T, err error, want chain.Category) {
	t.Helper()
	require.Error(t, err)
	vb, ok := chain.AsVerifyBlockFailed(err)
	require.True(t, ok, "expected a VerifyBlockFailedError, got %T: %v", err, err)
	assert.Equal(t, want, vb.Category)
}

type assertErr struct{ msg string }

func (e assertErr) Error() string { return e.msg }
