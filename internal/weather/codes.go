package weather

import "fmt"

// WMO weather interpretation codes as reported by Open-Meteo.
var codeLabels = map[int]string{
	0:  "맑음",
	1:  "대체로 맑음",
	2:  "부분적으로 흐림",
	3:  "흐림",
	45: "안개",
	48: "서리 안개",
	51: "가벼운 이슬비",
	53: "보통 이슬비",
	55: "강한 이슬비",
	61: "약한 비",
	63: "보통 비",
	65: "강한 비",
	71: "약한 눈",
	73: "보통 눈",
	75: "강한 눈",
	77: "진눈깨비",
	80: "약한 소나기",
	81: "보통 소나기",
	82: "강한 소나기",
	85: "약한 눈 소나기",
	86: "강한 눈 소나기",
	95: "뇌우",
	96: "약한 우박을 동반한 뇌우",
	99: "강한 우박을 동반한 뇌우",
}

// Describe returns the Korean label for a weather code. Codes outside the
// table yield a label that still carries the raw value.
func Describe(code int) string {
	if label, ok := codeLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("알 수 없는 날씨 (코드: %d)", code)
}

// ConditionFromCode maps a weather code to a coarse Condition.
func ConditionFromCode(code int) Condition {
	switch {
	case code == 0:
		return ConditionClear
	case code >= 1 && code <= 3:
		return ConditionCloudy
	case code == 45 || code == 48:
		return ConditionMist
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnow
	case code >= 95 && code <= 99:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}
