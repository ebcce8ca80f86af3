package booking

import (
	"fmt"
	"net/url"
)

// ReceiptMessage is the prefilled WhatsApp confirmation text. Name, service
// title, DD/MM/YYYY date and slot are substituted verbatim.
func ReceiptMessage(clientName, serviceTitle, dateBR, slot string) string {
	return fmt.Sprintf("Olá %s, seu agendamento para %s dia %s às %s foi confirmado!",
		clientName, serviceTitle, dateBR, slot)
}

// WhatsAppLink builds the wa.me deep link for the client's phone. phoneDigits
// must already be digits-only; countryCode is prepended as-is.
func WhatsAppLink(countryCode, phoneDigits, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + countryCode + phoneDigits,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}

// ReceiptLink composes the confirmation link for a completed flow.
func (f *Flow) ReceiptLink(countryCode string) string {
	msg := ReceiptMessage(f.Name, f.Service.Title, f.FormattedDate(), f.slot)
	return WhatsAppLink(countryCode, f.Phone, msg)
}
