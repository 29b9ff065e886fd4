package util

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"strings"
)

// NameSimilarity scores how alike two display names are from 0 to 1.
func NameSimilarity(a string, b string) float64 {
	return strutil.Similarity(SimplifyName(a), SimplifyName(b), metrics.NewLevenshtein())
}

func NamesRoughlyMatch(a string, b string) bool {
	return NameSimilarity(a, b) >= 0.8
}

// SimplifyName drops the case and any mention prefix from a name.
func SimplifyName(name string) string {
	return trimAllPrefix(strings.ToLower(name), "@")
}

func trimAllPrefix(str string, trim ...string) string {
	str = strings.TrimSpace(str)
	for _, v := range trim {
		str = strings.TrimSpace(strings.TrimPrefix(str, v))
	}
	return str
}
