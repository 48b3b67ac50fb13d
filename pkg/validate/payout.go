package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsPayoutNumber reports whether s is a Luhn-valid card number a withdrawal
// can be paid out to.
func IsPayoutNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
