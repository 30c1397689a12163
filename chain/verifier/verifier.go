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

// Package verifier is the block verification core: the gatekeeper every
// candidate block must pass before being appended to local chain state. It
// composes a handful of strategies (Basic, Consensus, Full, None, Dag) out of
// a shared verify-block policy and hands back a VerifiedBlock that nothing
// outside this package can construct.
package verifier

import "fmt"

// Variant selects which BlockVerifier strategy governs a chain.
type Variant string

const (
	Basic     Variant = "basic"
	Consensus Variant = "consensus"
	Full      Variant = "full"
	None      Variant = "none"
)

// Variants lists every valid Variant token, in the order help text should
// present them.
func Variants() []Variant {
	return []Variant{Basic, Consensus, Full, None}
}

// ParseVariant parses one of the lowercase tokens "basic", "consensus",
// "full" or "none" into a Variant. Any other input fails, naming the
// offending value.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Basic, Consensus, Full, None:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("verifier: unknown verifier variant %q", s)
	}
}

func (v Variant) String() string { return string(v) }
