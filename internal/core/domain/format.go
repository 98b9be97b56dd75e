package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// productSeparator joins individual product cards in multi-product
// output.
const productSeparator = "\n\n---\n\n"

// noResultsMessage is the fixed sentence returned for an empty result
// set.
const noResultsMessage = "К сожалению, товары по вашему запросу не найдены."

// FormatProduct renders one product as the deterministic card handed to
// the conversational layer.
func FormatProduct(p Product) string {
	stock := "Нет"
	if p.InStock {
		stock = "Да"
	}
	return fmt.Sprintf(`Товар id: %s
Название: %s
Категория: %s - %s
Цена: %s руб.
Описание: %s
Доступные цвета: %s
Размеры: %s
В наличии: %s
Теги: %s`,
		p.ID,
		p.Name,
		p.Category.DisplayName(), p.Subcategory,
		formatPrice(p.Price),
		p.Description,
		strings.Join(p.Colors, ", "),
		strings.Join(p.Sizes, ", "),
		stock,
		strings.Join(p.Tags, ", "),
	)
}

// FormatProducts renders a product sequence, joining individual cards
// with a fixed separator. An empty sequence becomes the fixed
// no-results sentence.
func FormatProducts(products []Product) string {
	if len(products) == 0 {
		return noResultsMessage
	}
	cards := make([]string, len(products))
	for i, p := range products {
		cards[i] = FormatProduct(p)
	}
	return strings.Join(cards, productSeparator)
}

// FormatCatalogSummary renders the per-category product counts as the
// catalog overview text.
func FormatCatalogSummary(categories []Category, stats map[Category]int) string {
	var b strings.Builder
	b.WriteString("В нашем каталоге представлены следующие категории товаров:\n\n")

	total := 0
	for _, c := range categories {
		count := stats[c]
		total += count
		fmt.Fprintf(&b, "• %s: %d товаров\n", c.DisplayName(), count)
	}

	fmt.Fprintf(&b, "\nВсего товаров в каталоге: %d", total)
	return b.String()
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
