package keys

import (
	"math/big"

	"github.com/conformal-wire/satoshiwire/base58"
)

func hexBig(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 16)
}

func encodeForTest(payload []byte) string {
	return base58.Encode(payload)
}
