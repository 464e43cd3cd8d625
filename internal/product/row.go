package product

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
)

// categoryMapping translates the free-text category codes of the catalog
// export to the seeded category_no values. Unknown codes fall back to the
// -1 sentinel, never to an error.
var categoryMapping = map[string]int32{
	"art":        1,
	"cases":      2,
	"stationery": 3,
	"writing":    4,
}

// row is one cleaned catalog line, ready for validation and insert.
type row struct {
	CategoryNo  int32
	Name        string `validate:"required"`
	Company     string
	InPrice     int
	OutPrice    int
	SellCount   int
	Quantity    int
	Visit       int
	SealService string `validate:"flagtext"`
	Delete      string `validate:"flagtext"`
}

// newRow cleans one raw CSV line. Category, counts and flags are defaulted
// on bad input; a malformed price fails the row. Any product_no the source
// carries is ignored - the store assigns surrogate keys.
func newRow(raw csvio.Row) (*row, error) {
	inPrice, err := parsePrice(raw.Get("in_price"))
	if err != nil {
		return nil, fmt.Errorf("in_price: %w", err)
	}
	outPrice, err := parsePrice(raw.Get("out_price"))
	if err != nil {
		return nil, fmt.Errorf("out_price: %w", err)
	}

	return &row{
		CategoryNo:  mapCategory(raw.Get("category_no")),
		Name:        strings.TrimSpace(raw.Get("name")),
		Company:     strings.TrimSpace(raw.Get("company")),
		InPrice:     inPrice,
		OutPrice:    outPrice,
		SellCount:   countOrZero(raw.Get("sell_count")),
		Quantity:    countOrZero(raw.Get("quantity")),
		Visit:       countOrZero(raw.Get("visit")),
		SealService: sealServiceFlag(raw.Get("seal_service")),
		Delete:      deleteFlag(raw.Get("delete")),
	}, nil
}

func (r *row) product() *model.Product {
	p := &model.Product{
		CategoryNo:  r.CategoryNo,
		Name:        r.Name,
		InPrice:     r.InPrice,
		OutPrice:    r.OutPrice,
		SellCount:   r.SellCount,
		Quantity:    r.Quantity,
		Visit:       r.Visit,
		SealService: model.Flag(r.SealService),
		Delete:      model.Flag(r.Delete),
	}
	if r.Company != "" {
		p.Company = &r.Company
	}
	return p
}

func mapCategory(code string) int32 {
	if no, ok := categoryMapping[strings.TrimSpace(code)]; ok {
		return no
	}
	return model.UnmappedCategory
}

// parsePrice strictly parses a currency value with optional thousands
// separators. Missing or non-numeric input rejects the row - prices must
// never be silently zeroed.
func parsePrice(value string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("값이 비어 있습니다")
	}
	price, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("숫자가 아닌 값 %q", value)
	}
	return price, nil
}

// countOrZero defaults missing or unparseable count fields to 0.
func countOrZero(value string) int {
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return count
}

// sealServiceFlag maps the source tri-state: T -> True, F -> False,
// missing -> False. Any other text passes through and fails validation,
// mirroring the store's CHECK constraint.
func sealServiceFlag(value string) string {
	switch strings.TrimSpace(value) {
	case "T":
		return string(model.FlagTrue)
	case "F", "":
		return string(model.FlagFalse)
	default:
		return strings.TrimSpace(value)
	}
}

// deleteFlag defaults an absent soft-delete column to False.
func deleteFlag(value string) string {
	if strings.TrimSpace(value) == "" {
		return string(model.FlagFalse)
	}
	return strings.TrimSpace(value)
}
