package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@gmail.com", MaskEmail("john.doe@gmail.com"))
	assert.Equal(t, "***@***", MaskEmail("not-an-email"))
	assert.Equal(t, "", MaskEmail(""))
}

func TestMaskResidentNo(t *testing.T) {
	// 성별 코드까지만 노출, 나머지는 마스킹
	assert.Equal(t, "990101-1******", MaskResidentNo("990101-1234567"))
	assert.Equal(t, "990101-1", MaskResidentNo("990101-1"))
	assert.Equal(t, "*******", MaskResidentNo("9901011"))
	assert.Equal(t, "", MaskResidentNo(""))
}
