// Package upi builds UPI deep-link intents for the payment screen. The
// intent is a plain URI; no acquirer API is involved.
package upi

import (
	"fmt"
	"net/url"
)

type Payee struct {
	VPA  string
	Name string
}

func NewPayee(vpa, name string) Payee {
	return Payee{VPA: vpa, Name: name}
}

// PaymentURI renders the upi://pay deep link for an order. The amount is
// always formatted with exactly two decimal places and the currency is INR.
func (p Payee) PaymentURI(orderID string, amount float64) string {

	params := url.Values{}
	params.Set("pa", p.VPA)
	params.Set("pn", p.Name)
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("tn", fmt.Sprintf("Order %s", orderID))
	params.Set("cu", "INR")

	return "upi://pay?" + params.Encode()
}
