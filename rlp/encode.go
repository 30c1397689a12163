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

// Package rlp implements the subset of the Recursive Length Prefix encoding
// scheme used elsewhere in the codebase to derive deterministic content hashes
// for headers, bodies and other consensus-relevant structures.
package rlp

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"reflect"
)

// Encode writes the RLP encoding of val to w.
func Encode(w io.Writer, val interface{}) error {
	b, err := EncodeToBytes(val)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// EncodeToBytes returns the RLP encoding of val.
func EncodeToBytes(val interface{}) ([]byte, error) {
	return encodeValue(reflect.ValueOf(val))
}

func encodeValue(v reflect.Value) ([]byte, error) {
	if !v.IsValid() {
		return encodeString(nil), nil
	}
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return encodeString(nil), nil
		}
		if bi, ok := v.Interface().(*big.Int); ok {
			return encodeBigInt(bi), nil
		}
		return encodeValue(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return encodeString(nil), nil
		}
		return encodeValue(v.Elem())
	case reflect.String:
		return encodeString([]byte(v.String())), nil
	case reflect.Bool:
		if v.Bool() {
			return encodeUint(1), nil
		}
		return encodeUint(0), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return encodeUint(v.Uint()), nil
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(sliceToBytes(v)), nil
		}
		return encodeList(v)
	case reflect.Struct:
		if bi, ok := v.Interface().(big.Int); ok {
			return encodeBigInt(&bi), nil
		}
		return encodeStruct(v)
	default:
		return nil, fmt.Errorf("rlp: unsupported kind %s", v.Kind())
	}
}

func sliceToBytes(v reflect.Value) []byte {
	if v.Kind() == reflect.Array {
		b := make([]byte, v.Len())
		reflect.Copy(reflect.ValueOf(b), v)
		return b
	}
	return v.Bytes()
}

func encodeBigInt(bi *big.Int) []byte {
	if bi == nil || bi.Sign() == 0 {
		return encodeString(nil)
	}
	return encodeString(bi.Bytes())
}

func encodeStruct(v reflect.Value) ([]byte, error) {
	t := v.Type()
	items := make([][]byte, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" { // unexported
			continue
		}
		enc, err := encodeValue(v.Field(i))
		if err != nil {
			return nil, err
		}
		items = append(items, enc)
	}
	return encodeListItems(items), nil
}

func encodeList(v reflect.Value) ([]byte, error) {
	items := make([][]byte, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		enc, err := encodeValue(v.Index(i))
		if err != nil {
			return nil, err
		}
		items = append(items, enc)
	}
	return encodeListItems(items), nil
}

func encodeListItems(items [][]byte) []byte {
	var buf bytes.Buffer
	for _, it := range items {
		buf.Write(it)
	}
	return wrapHeader(buf.Bytes(), 0xc0, 0xf7)
}

func encodeUint(i uint64) []byte {
	if i == 0 {
		return []byte{0x80}
	}
	if i < 0x80 {
		return []byte{byte(i)}
	}
	return encodeString(uintToMinimalBytes(i))
}

func uintToMinimalBytes(i uint64) []byte {
	var b [8]byte
	for n := 8; n > 0; n-- {
		b[n-1] = byte(i)
		i >>= 8
	}
	start := 0
	for start < 7 && b[start] == 0 {
		start++
	}
	return b[start:]
}

func encodeString(s []byte) []byte {
	if len(s) == 1 && s[0] < 0x80 {
		return s
	}
	return wrapHeader(s, 0x80, 0xb7)
}

// wrapHeader prepends the RLP length header for a string (short=0x80,long=0xb7)
// or list (short=0xc0,long=0xf7) payload.
func wrapHeader(payload []byte, short, long byte) []byte {
	n := len(payload)
	if n < 56 {
		out := make([]byte, 0, n+1)
		out = append(out, short+byte(n))
		out = append(out, payload...)
		return out
	}
	lenBytes := uintToMinimalBytes(uint64(n))
	out := make([]byte, 0, n+1+len(lenBytes))
	out = append(out, long+byte(len(lenBytes)))
	out = append(out, lenBytes...)
	out = append(out, payload...)
	return out
}
