package product

import (
	"testing"

	"github.com/hanbit-mall/csv-etl/internal/model"
	"github.com/hanbit-mall/csv-etl/internal/shared/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCategory(t *testing.T) {
	testCases := []struct {
		code     string
		expected int32
	}{
		{"art", 1},
		{"cases", 2},
		{"stationery", 3},
		{"writing", 4},
		{" writing ", 4},
		{"unknown", model.UnmappedCategory},
		{"", model.UnmappedCategory},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, mapCategory(tc.code), "code=%q", tc.code)
	}
}

func TestParsePrice(t *testing.T) {
	// 천 단위 구분자는 제거하고 정수로 파싱한다
	price, err := parsePrice("1,200")
	require.NoError(t, err)
	assert.Equal(t, 1200, price)

	price, err = parsePrice(" 300 ")
	require.NoError(t, err)
	assert.Equal(t, 300, price)

	// 누락이나 비정상 값은 행을 거부한다 - 0으로 뭉개지 않는다
	_, err = parsePrice("")
	assert.Error(t, err)
	_, err = parsePrice("천원")
	assert.Error(t, err)
}

func TestCountOrZero(t *testing.T) {
	assert.Equal(t, 5, countOrZero("5"))
	assert.Equal(t, 0, countOrZero(""))
	assert.Equal(t, 0, countOrZero("abc"))
}

func TestSealServiceFlag(t *testing.T) {
	assert.Equal(t, "True", sealServiceFlag("T"))
	assert.Equal(t, "False", sealServiceFlag("F"))
	assert.Equal(t, "False", sealServiceFlag(""))
	// 알 수 없는 값은 그대로 통과시켜 validation에서 걸리게 한다
	assert.Equal(t, "X", sealServiceFlag("X"))
}

func TestNewRow_DiscardsSourceProductNo(t *testing.T) {
	// Given: a source line that carries its own surrogate key
	raw := csvio.Row{
		"product_no":  "77",
		"category_no": "writing",
		"name":        "Pen",
		"in_price":    "1,000",
		"out_price":   "1,500",
	}

	// When
	cleaned, err := newRow(raw)
	require.NoError(t, err)

	// Then: the store assigns product_no; the source value is ignored
	product := cleaned.product()
	assert.Zero(t, product.ProductNo)
	assert.Equal(t, int32(4), product.CategoryNo)
	assert.Equal(t, 1000, product.InPrice)
	assert.Equal(t, 1500, product.OutPrice)
	assert.Equal(t, model.FlagFalse, product.SealService)
	assert.Equal(t, model.FlagFalse, product.Delete)
	assert.Nil(t, product.Company)
}
