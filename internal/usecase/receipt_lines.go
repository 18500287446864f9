package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// lineType labels a single trimmed receipt line.
type lineType string

const (
	lineHeader    lineType = "header"
	lineFooter    lineType = "footer"
	lineSeparator lineType = "separator"
	lineItem      lineType = "item"
	lineUnknown   lineType = "unknown"
)

// Keyword tables for line classification. Kept as data so they can be
// extended without touching the classifier.
var (
	headerKeywords = []string{
		"receipt", "store", "shop", "bill", "invoice",
		"date", "time", "phone", "address", "customer",
	}
	footerKeywords = []string{
		"total", "subtotal", "tax", "payment", "thank", "visit", "paid",
	}
)

var (
	separatorRegex = regexp.MustCompile(`^[=\-*]+$`)
	digitRegex     = regexp.MustCompile(`\d`)

	// Numeric tokens: integers or two-decimal amounts ("18", "166.00").
	numberRegex = regexp.MustCompile(`\d+(?:\.\d{2})?`)

	// Explicit quantity marker: "2 x", "2x", case-insensitive.
	quantityRegex = regexp.MustCompile(`(?i)(\d+)\s*x`)

	bracketPipeRegex = regexp.MustCompile(`[-_|]`)
)

// classifyLine labels a trimmed line. Evaluation order is load-bearing:
// a footer keyword wins over the presence of digits, so "Total 166.00"
// is a footer, never an item.
func classifyLine(line string) lineType {
	lower := strings.ToLower(line)

	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return lineHeader
		}
	}
	for _, kw := range footerKeywords {
		if strings.Contains(lower, kw) {
			return lineFooter
		}
	}
	if separatorRegex.MatchString(line) {
		return lineSeparator
	}
	if digitRegex.MatchString(line) && len(line) > 3 {
		return lineItem
	}
	return lineUnknown
}

// parsedLine is the raw extraction from an item line, before catalog
// matching: candidate name, quantity and resolved prices.
type parsedLine struct {
	name      string
	quantity  int
	unitPrice float64
	lineTotal float64
}

// parseItemLine extracts quantity, unit price, line total and a
// candidate product name from a line classified as an item. It returns
// false when the line carries no usable item: no numeric tokens,
// implausible prices (total < 1 or unit < 0.1, stray single-digit
// noise), or a candidate name shorter than 2 characters.
func parseItemLine(line string) (parsedLine, bool) {
	numbers := numberRegex.FindAllString(line, -1)
	if len(numbers) == 0 {
		return parsedLine{}, false
	}

	quantity := 1
	if m := quantityRegex.FindStringSubmatch(line); m != nil {
		if q, err := strconv.Atoi(m[1]); err == nil {
			quantity = q
		}
	}

	var unitPrice, lineTotal float64
	switch {
	case len(numbers) >= 3:
		// Qty Unit Total layout: the receipt's own arithmetic is kept
		// as printed, even when unit*qty disagrees with the total.
		unitPrice, _ = strconv.ParseFloat(numbers[len(numbers)-2], 64)
		lineTotal, _ = strconv.ParseFloat(numbers[len(numbers)-1], 64)
	case len(numbers) == 2:
		lineTotal, _ = strconv.ParseFloat(numbers[1], 64)
		unitPrice = lineTotal / float64(quantity)
	default:
		lineTotal, _ = strconv.ParseFloat(numbers[0], 64)
		unitPrice = lineTotal / float64(quantity)
	}

	if lineTotal < 1 || unitPrice < 0.1 {
		return parsedLine{}, false
	}

	name := quantityRegex.ReplaceAllString(line, "")
	name = strings.ReplaceAll(name, "₹", "")
	name = rupeeMarkerRegex.ReplaceAllString(name, "")
	name = numberRegex.ReplaceAllString(name, "")
	name = bracketPipeRegex.ReplaceAllString(name, " ")
	name = multipleSpacesRegex.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return parsedLine{}, false
	}

	return parsedLine{
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: lineTotal,
	}, true
}
