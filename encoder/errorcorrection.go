// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/datamatrix/reedsolomon"
)

// EncodeECC200 generates Reed-Solomon ECC-200 error correction codewords and
// returns the full codeword sequence (data + EC).
//
// Data codeword i belongs to block i mod blocks. Each block is corrected
// independently and its error correction codewords are interleaved back at
// the same stride after the data.
func EncodeECC200(codewords []byte, symbolInfo *SymbolInfo) ([]byte, error) {
	if len(codewords) != symbolInfo.DataCapacity {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			symbolInfo.DataCapacity, len(codewords))
	}
	result := make([]byte, symbolInfo.TotalCodewords())
	copy(result, codewords)
	if err := GenerateECC(result, symbolInfo.DataCapacity, symbolInfo.DataBlock, symbolInfo.ErrorBlock); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateECC fills wd[dataSize:] with the interleaved error correction
// codewords for the data in wd[:dataSize]. wd must hold dataSize plus
// errorBlock codewords for every block.
func GenerateECC(wd []byte, dataSize, dataBlock, errorBlock int) error {
	blocks := (dataSize + 2) / dataBlock
	if len(wd) < dataSize+blocks*errorBlock {
		return fmt.Errorf("datamatrix/encoder: %d codewords cannot hold %d data and %d error correction codewords",
			len(wd), dataSize, blocks*errorBlock)
	}
	rs := reedsolomon.NewEncoder()
	buf := make([]byte, 0, dataBlock)
	ecc := make([]byte, errorBlock)
	for b := 0; b < blocks; b++ {
		buf = buf[:0]
		for n := b; n < dataSize; n += blocks {
			buf = append(buf, wd[n])
		}
		if err := rs.Remainder(buf, ecc); err != nil {
			return fmt.Errorf("datamatrix/encoder: ECC encoding failed: %w", err)
		}
		for i, p := 0, b; i < errorBlock; i, p = i+1, p+blocks {
			wd[dataSize+p] = ecc[i]
		}
	}
	return nil
}
