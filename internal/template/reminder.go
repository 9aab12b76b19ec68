package template

import (
	"fmt"
	"html"
	"strings"

	"github.com/greenfield-grocer/notifier/internal/model"
)

const dueDateFormat = "2 January 2006"

func invoicesTotal(invoices []model.Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		total += inv.Total
	}

	return total
}

// PaymentReminderText renders the WhatsApp payment reminder for a customer's
// overdue invoices.
func PaymentReminderText(customer model.Customer, invoices []model.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", customer.Name)
	fmt.Fprintf(&b, "Friendly reminder from %s: the following invoices are still outstanding.\n\n", businessName)

	for _, inv := range invoices {
		fmt.Fprintf(&b, "- Invoice #%s: %s (due %s)\n",
			shortRef(inv.ID), money(inv.Total), inv.DueDate.Format(dueDateFormat))
	}

	fmt.Fprintf(&b, "\nTotal due: %s\n\nPlease settle at your earliest convenience. Thank you!", money(invoicesTotal(invoices)))

	return b.String()
}

// PaymentReminderHTML renders the email payment reminder.
func PaymentReminderHTML(customer model.Customer, invoices []model.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Payment reminder</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(customer.Name))
	fmt.Fprintf(&b, "<p>The following invoices from %s are still outstanding:</p>", businessName)

	b.WriteString("<ul>")
	for _, inv := range invoices {
		fmt.Fprintf(&b, "<li>Invoice #%s: %s (due %s)</li>",
			shortRef(inv.ID), money(inv.Total), inv.DueDate.Format(dueDateFormat))
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p><strong>Total due: %s</strong></p>", money(invoicesTotal(invoices)))
	b.WriteString("<p>Please settle at your earliest convenience. Thank you!</p>")

	return b.String()
}
