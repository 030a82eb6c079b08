package ifc

import (
	"math/big"

	"github.com/google/uuid"
)

// IFC folds a 128-bit GUID into 22 characters over its own base-64 alphabet.
const guidAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

var guidBase = big.NewInt(64)

// CompressGUID renders a UUID in the IfcGloballyUniqueId form.
func CompressGUID(u uuid.UUID) string {
	num := new(big.Int).SetBytes(u[:])
	mod := new(big.Int)
	buf := make([]byte, 22)
	for i := 21; i >= 0; i-- {
		num.DivMod(num, guidBase, mod)
		buf[i] = guidAlphabet[mod.Int64()]
	}
	return string(buf)
}

func newGUID() Str {
	return Str(CompressGUID(uuid.New()))
}
