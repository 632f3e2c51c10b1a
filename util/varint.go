// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/budgetd/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:  ext | B34 | B33 | B32 | B31 | B30 | B29 | B28
// byte 6:  ext | B41 | B40 | B39 | B38 | B37 | B36 | B35
// byte 7:  ext | B48 | B47 | B46 | B45 | B44 | B43 | B42
// byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
// byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		result = append(result, byte(value))
		return result
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		result = append(result, byte(value|ext))
		value >>= 7
	}
	return result
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currByte := uint64(buffer[count])
		count += 1
		if count < Varint64MaximumBytes {
			result |= currByte & 0x7f << shift
			if 0 == currByte&0x80 {
				return result, count
			}
		} else {
			result |= currByte << shift
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	iValue := int(value)
	if iValue < minimum || iValue > maximum {
		return 0, 0
	}
	return iValue, count
}

// AppendVarint64 - append a Varint64 to a buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a field prefixed by Varint64(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a string prefixed by Varint64(length)
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// ReadVarint64 - decode a Varint64 starting at offset n
//
// returns the value and the offset of the next field
func ReadVarint64(buffer []byte, n int) (uint64, int, error) {
	if n < 0 || n >= len(buffer) {
		return 0, 0, fault.TruncatedRecord
	}
	value, count := FromVarint64(buffer[n:])
	if 0 == count {
		return 0, 0, fault.TruncatedRecord
	}
	return value, n + count, nil
}

// ReadBytes - decode a length prefixed field starting at offset n
//
// the length must be in the range minimum..maximum; the returned
// slice is a copy so the buffer can be reused
func ReadBytes(buffer []byte, n int, minimum int, maximum int) ([]byte, int, error) {
	if n < 0 || n >= len(buffer) {
		return nil, 0, fault.TruncatedRecord
	}
	length, count := ClippedVarint64(buffer[n:], minimum, maximum)
	if 0 == count {
		return nil, 0, fault.InvalidCount
	}
	n += count
	if n+length > len(buffer) {
		return nil, 0, fault.TruncatedRecord
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length, nil
}
