package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ngưỡng tương đồng tối thiểu để gợi ý loại phòng
const roomTypeSuggestThreshold = 0.5

// Hàm chuẩn hóa loại phòng: bỏ dấu, chữ thường
func NormalizeRoomType(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// SameRoomType so sánh hai loại phòng sau khi chuẩn hóa
func SameRoomType(a, b string) bool {
	return NormalizeRoomType(a) == NormalizeRoomType(b)
}

// RoomTypeContains kiểm tra query có nằm trong loại phòng không (không phân biệt hoa thường, dấu)
func RoomTypeContains(roomType, query string) bool {
	return strings.Contains(NormalizeRoomType(roomType), NormalizeRoomType(query))
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// ClosestRoomType tìm loại phòng gần nhất với input trong danh sách known
func ClosestRoomType(input string, known []string) (string, bool) {
	normalized := NormalizeRoomType(input)
	if normalized == "" || len(known) == 0 {
		return "", false
	}

	originals := make(map[string]string, len(known))
	keys := make([]string, 0, len(known))
	for _, k := range known {
		n := NormalizeRoomType(k)
		if _, ok := originals[n]; ok || n == "" {
			continue
		}
		originals[n] = k
		keys = append(keys, n)
	}
	sort.Strings(keys)

	cm := closestmatch.New(keys, []int{2, 3})
	best := cm.Closest(normalized)
	if best == "" {
		return "", false
	}
	if calculateSimilarity(normalized, best) < roomTypeSuggestThreshold {
		return "", false
	}
	return originals[best], true
}
