package booking

import (
	"fmt"
	"math/rand"
)

const ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TicketCode builds an e-ticket number of the form
// BUS-<row>-<col>-<6 uppercase alphanumerics>. The suffix comes from a
// non-cryptographic source; uniqueness is best effort and not enforced
// by storage.
func TicketCode(row, col int) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = ticketAlphabet[rand.Intn(len(ticketAlphabet))]
	}
	return fmt.Sprintf("BUS-%d-%d-%s", row, col, suffix)
}
