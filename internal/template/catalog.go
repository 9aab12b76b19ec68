package template

import (
	"fmt"
	"html"
	"strings"

	"github.com/greenfield-grocer/notifier/internal/model"
)

// categoryOrder fixes both which categories are rendered and in what order.
// Categories without any available product are skipped.
var categoryOrder = []struct {
	key   string
	label string
}{
	{model.CategoryVegetables, "Vegetables"},
	{model.CategoryFruits, "Fruits"},
	{model.CategoryDairyEggs, "Dairy & Eggs"},
	{model.CategoryBakery, "Bread & Bakery"},
	{model.CategoryPantry, "Pantry"},
	{model.CategoryMeat, "Meat & Protein"},
}

const orderingDeadline = "Wednesday 5pm"

func groupByCategory(products []model.Product) map[string][]model.Product {
	grouped := make(map[string][]model.Product)
	for _, p := range products {
		if !p.IsAvailable {
			continue
		}

		grouped[p.Category] = append(grouped[p.Category], p)
	}

	return grouped
}

// ProductListText renders the WhatsApp catalog broadcast.
func ProductListText(products []model.Product) string {
	grouped := groupByCategory(products)

	var b strings.Builder
	fmt.Fprintf(&b, "%s — available this week\n", businessName)

	for _, cat := range categoryOrder {
		items := grouped[cat.key]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n*%s*\n", cat.label)
		for _, p := range items {
			fmt.Fprintf(&b, "- %s — %s per %s", p.Name, money(p.Price), p.Unit)
			if p.IsSeasonal {
				b.WriteString(" (seasonal)")
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\nOrder before %s for this week's delivery!", orderingDeadline)

	return b.String()
}

// ProductListHTML renders the email catalog broadcast.
func ProductListHTML(products []model.Product) string {
	grouped := groupByCategory(products)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s — available this week</h2>", businessName)

	for _, cat := range categoryOrder {
		items := grouped[cat.key]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "<h3>%s</h3><ul>", cat.label)
		for _, p := range items {
			fmt.Fprintf(&b, "<li>%s — %s per %s", html.EscapeString(p.Name), money(p.Price), html.EscapeString(p.Unit))
			if p.IsSeasonal {
				b.WriteString(" <em>(seasonal)</em>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}

	fmt.Fprintf(&b, "<p><strong>Order before %s for this week's delivery!</strong></p>", orderingDeadline)

	return b.String()
}
