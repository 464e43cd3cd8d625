package purchase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
)

// columnRenames maps the Korean purchase history headers to canonical
// names. 구매_ID is renamed too, then discarded - the store assigns buy_no.
var columnRenames = map[string]string{
	"구매_ID":   "buy_no",
	"구매_날짜":   "date",
	"구매자_ID":  "member_no",
	"상품_ID":   "product_no",
	"구매_수량":   "quantity",
	"각인_서비스":  "seal_service",
	"결제_방식":   "method",
	"총_결제_금액": "total_price",
}

// digitRun matches the first contiguous run of digits inside the raw
// product id text (the source embeds ids in strings like "PRD-00042").
var digitRun = regexp.MustCompile(`\d+`)

// newPurchase coerces one raw history line into a store row. Quantity and
// product id degrade to their defaults on bad input; a non-numeric,
// non-empty member id or total price fails the row.
func newPurchase(raw csvio.Row) (*model.Purchase, error) {
	memberNo, err := parseMemberNo(raw.Get("member_no"))
	if err != nil {
		return nil, fmt.Errorf("member_no: %w", err)
	}
	totalPrice, err := parseTotalPrice(raw.Get("total_price"))
	if err != nil {
		return nil, fmt.Errorf("total_price: %w", err)
	}

	return &model.Purchase{
		MemberNo:    memberNo,
		ProductNo:   extractProductNo(raw.Get("product_no")),
		Date:        nullable(strings.TrimSpace(raw.Get("date"))),
		Quantity:    parseQuantity(raw.Get("quantity")),
		SealService: nullable(raw.Get("seal_service")), // 원문 그대로 보존
		TotalPrice:  totalPrice,
		Method:      nullable(strings.TrimSpace(raw.Get("method"))),
	}, nil
}

// extractProductNo pulls the first digit run out of the raw text; no match
// falls back to the 0 sentinel.
func extractProductNo(value string) int {
	match := digitRun.FindString(value)
	if match == "" {
		return 0
	}
	productNo, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return productNo
}

// parseQuantity numeric-coerces the quantity; unparseable input becomes 0.
func parseQuantity(value string) int {
	cleaned := strings.TrimSpace(value)
	if quantity, err := strconv.Atoi(cleaned); err == nil {
		return quantity
	}
	if quantity, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int(quantity)
	}
	return 0
}

// parseTotalPrice strips thousands separators and defaults missing input
// to 0; non-numeric text fails the row.
func parseTotalPrice(value string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return 0, nil
	}
	totalPrice, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("숫자가 아닌 값 %q", value)
	}
	return totalPrice, nil
}

// parseMemberNo parses the purchaser reference. Empty input stays null;
// the value is never validated against member_table.
func parseMemberNo(value string) (*int, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil, nil
	}
	memberNo, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil, fmt.Errorf("숫자가 아닌 값 %q", value)
	}
	return &memberNo, nil
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
