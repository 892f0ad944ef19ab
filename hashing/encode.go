// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing computes the canonical, cross-peer hash inputs defined
// in §4.1: proposal_hash and vote_id. Encoding is deterministic and
// unambiguous — integers are little-endian fixed-width, byte strings are
// length-prefixed — so two honest peers hashing the same logical proposal
// or vote always arrive at the same 32-byte digest.
package hashing

import (
	"encoding/binary"
)

// encoder appends length-prefixed and fixed-width fields to a byte buffer
// in a single deterministic order. Each encoder starts with 256 bytes of
// capacity, enough for a vote's fields, and append grows the buffer when
// an encoding (a proposal with a large payload) is longer.
type encoder struct {
	buf []byte
}

func newEncoder() *encoder {
	return &encoder{buf: make([]byte, 0, 256)}
}

// bytes length-prefixes b with a little-endian uint32 length.
func (e *encoder) bytes(b []byte) *encoder {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	e.buf = append(e.buf, lenBuf[:]...)
	e.buf = append(e.buf, b...)
	return e
}

// str is bytes() over the UTF-8 encoding of s.
func (e *encoder) str(s string) *encoder {
	return e.bytes([]byte(s))
}

func (e *encoder) u8(v uint8) *encoder {
	e.buf = append(e.buf, v)
	return e
}

func (e *encoder) u32(v uint32) *encoder {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
	return e
}

func (e *encoder) u64(v uint64) *encoder {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
	return e
}

func (e *encoder) i64(v int64) *encoder {
	return e.u64(uint64(v))
}

func (e *encoder) boolean(v bool) *encoder {
	if v {
		return e.u8(1)
	}
	return e.u8(0)
}
