package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// MaskResidentNo masks the tail of a 주민등록번호 beyond the gender digit.
// Example: 990101-1234567 -> 990101-1******
func MaskResidentNo(residentNo string) string {
	if residentNo == "" {
		return ""
	}

	idx := strings.IndexByte(residentNo, '-')
	if idx < 0 || idx+1 >= len(residentNo) {
		// 형식이 다른 값은 통째로 가린다
		return strings.Repeat("*", len(residentNo))
	}

	visible := residentNo[:idx+2] // 생년월일 + 성별 코드까지만 노출
	return visible + strings.Repeat("*", len(residentNo)-len(visible))
}
