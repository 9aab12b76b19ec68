package template

import (
	"fmt"
	"html"
	"strings"

	"github.com/greenfield-grocer/notifier/internal/model"
)

const deliveryDateFormat = "Monday, 2 January 2006"

func deliveryMethodLabel(method string) string {
	if method == model.DeliveryMethodCollection {
		return "Collection"
	}

	return "Delivery"
}

func orderClosingLine(method string) string {
	if method == model.DeliveryMethodCollection {
		return "See you at collection!"
	}

	return "We'll deliver straight to your door."
}

// OrderConfirmationText renders the WhatsApp order confirmation.
func OrderConfirmationText(customer model.Customer, order model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s!\n\n", customer.Name)
	fmt.Fprintf(&b, "Your order #%s is confirmed.\n\n", shortRef(order.ID))
	fmt.Fprintf(&b, "Delivery date: %s\n", order.DeliveryDate.Format(deliveryDateFormat))
	fmt.Fprintf(&b, "Method: %s\n\n", deliveryMethodLabel(order.DeliveryMethod))

	b.WriteString("Your items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s: %s %s @ %s\n",
			item.ProductName, quantity(item.Quantity), item.Unit, money(item.PriceAtOrder))
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", money(order.Total()))

	if order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\nSpecial instructions: %s\n", order.SpecialInstructions)
	}

	fmt.Fprintf(&b, "\n%s\n- %s", orderClosingLine(order.DeliveryMethod), businessName)

	return b.String()
}

// OrderConfirmationHTML renders the email order confirmation.
func OrderConfirmationHTML(customer model.Customer, order model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Thank you for your order, %s!</h2>", html.EscapeString(customer.Name))
	fmt.Fprintf(&b, "<p>Your order <strong>#%s</strong> is confirmed.</p>", shortRef(order.ID))
	fmt.Fprintf(&b, "<p>Delivery date: %s<br>Method: %s</p>",
		order.DeliveryDate.Format(deliveryDateFormat), deliveryMethodLabel(order.DeliveryMethod))

	b.WriteString("<ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%s: %s %s @ %s</li>",
			html.EscapeString(item.ProductName), quantity(item.Quantity),
			html.EscapeString(item.Unit), money(item.PriceAtOrder))
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p><strong>Total: %s</strong></p>", money(order.Total()))

	if order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "<p>Special instructions: %s</p>", html.EscapeString(order.SpecialInstructions))
	}

	fmt.Fprintf(&b, "<p>%s<br>- %s</p>", orderClosingLine(order.DeliveryMethod), businessName)

	return b.String()
}
