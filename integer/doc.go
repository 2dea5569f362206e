// Package integer provides a sign-and-magnitude integer block.
//
// The magnitude is a big-endian byte sequence and the sign travels beside
// it, never inside it. This is the shape base encoders want: they only ever
// see the magnitude while the caller decides what the sign means.
//
// Encoding
//
// Blocks marshal to a zigzag layout: the magnitude is shifted left one bit
// and bit 0 carries the sign.
//
//  | value | magnitude | marshaled   |
//  |-------|-----------|-------------|
//  |    +0 | 0000_0000 | 0000_0000   |
//  |    +1 | 0000_0001 | 0000_0010   |
//  |    -1 | 0000_0001 | 0000_0011   |
//  |  +127 | 0111_1111 | 1111_1110   |
//  |  -127 | 0111_1111 | 1111_1111   |
//  |  +128 | 1000_0000 | 0000_0001 0000_0000 |
//  |-------|-----------|-------------|
//
// Zero is always a single zero byte, never an empty sequence.
package integer
