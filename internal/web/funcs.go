package web

import (
	"fmt"
	"html/template"
	"slices"
	"strings"

	"crochetstudio/internal/domain"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money": func(n int) string { return fmt.Sprintf("$%d", n) },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
		"contains": func(list []string, v string) bool {
			return slices.Contains(list, v)
		},
		"join":        strings.Join,
		"lower":       strings.ToLower,
		"optionLabel": domain.OptionLabel,
		"intval": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		"floatval": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"stars": func(r int) []bool {
			out := make([]bool, 5)
			for i := range out {
				out[i] = i < r
			}
			return out
		},
	}
}
