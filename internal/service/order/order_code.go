package order

import "math/rand/v2"

const (
	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeLength   = 6
)

// newOrderCode returns the short shared secret printed on the parcel and
// quoted back at pickup and drop-off. Collisions are not checked; at pilot
// volume a repeated code across live orders is acceptably improbable.
func newOrderCode() string {
	code := make([]byte, orderCodeLength)
	for i := range code {
		code[i] = orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))]
	}
	return string(code)
}
