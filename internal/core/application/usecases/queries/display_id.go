package queries

import "fmt"

// displayID renders the zero-padded public form of an order id, e.g.
// "ORD000123". Display only, never a lookup key.
func displayID(id int64) string {
	return fmt.Sprintf("ORD%06d", id)
}
