package service

import (
	"strings"

	"OM_Profiles/internal/model"
)

// FilterAll 表示该维度不设限制
const FilterAll = "All"

// Filters 目录页的筛选面板，六个条件之间是 AND
type Filters struct {
	CameraModel        string
	Category           string
	MinRating          float64
	LightingConditions string
	Tags               []string
}

// Matches 纯函数，只对已经可见的行调用；可见性由取数层的 visible=1 兜底，这里不重查。
// 各谓词相互独立，施加顺序不影响结果。
func Matches(p *model.ColorProfile, f Filters, query string) bool {
	if !matchQuery(p, query) {
		return false
	}
	if !matchFacet(p.CameraModel, f.CameraModel) {
		return false
	}
	if !matchFacet(p.Category, f.Category) {
		return false
	}
	// 无评分的档案不被评分下限排除
	if p.AvgRating != nil && *p.AvgRating < f.MinRating {
		return false
	}
	if !matchFacet(p.LightingConditions, f.LightingConditions) {
		return false
	}
	return matchTags(p.Tags, f.Tags)
}

// matchQuery 名称或描述的大小写不敏感子串匹配，空查询放行
func matchQuery(p *model.ColorProfile, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// matchFacet 精确匹配；哨兵值 All（或未设置）放行。
// 档案缺失该字段时按不匹配处理，不报错。
func matchFacet(value, want string) bool {
	if want == "" || want == FilterAll {
		return true
	}
	return value == want
}

// matchTags 筛选集合为空放行；否则只要有一个标签相交即可（标签内部是 OR）
func matchTags(raw string, want []string) bool {
	if len(want) == 0 {
		return true
	}
	have := SplitTags(raw)
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// SplitTags 档案标签按逗号落库，这里切回集合
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags 反向操作，入库前拼接
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}
