package weather

import (
	"strconv"
	"strings"
	"testing"
)

func TestDescribeKnownCodes(t *testing.T) {
	want := map[int]string{
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

	if len(codeLabels) != 24 {
		t.Fatalf("expected 24 labelled codes, got %d", len(codeLabels))
	}
	for code, label := range want {
		if got := Describe(code); got != label {
			t.Fatalf("Describe(%d) = %q, want %q", code, got, label)
		}
	}
}

func TestDescribeFallbackEmbedsCode(t *testing.T) {
	for _, code := range []int{-1, 4, 56, 100, 9999} {
		got := Describe(code)
		if !strings.Contains(got, strconv.Itoa(code)) {
			t.Fatalf("Describe(%d) = %q, expected it to contain the code", code, got)
		}
		if !strings.HasPrefix(got, "알 수 없는 날씨") {
			t.Fatalf("Describe(%d) = %q, expected fallback label", code, got)
		}
	}
}

func TestConditionFromCode(t *testing.T) {
	tests := map[int]Condition{
		0:   ConditionClear,
		2:   ConditionCloudy,
		45:  ConditionMist,
		53:  ConditionRain,
		81:  ConditionRain,
		77:  ConditionSnow,
		86:  ConditionSnow,
		96:  ConditionStorm,
		-1:  ConditionUnknown,
		100: ConditionUnknown,
	}
	for code, want := range tests {
		if got := ConditionFromCode(code); got != want {
			t.Fatalf("ConditionFromCode(%d) = %s, want %s", code, got, want)
		}
	}
}
