package service

import (
	"math/rand"
	"testing"

	"OM_Profiles/internal/model"

	"github.com/stretchr/testify/assert"
)

func sample() *model.ColorProfile {
	avg := 4.8
	return &model.ColorProfile{
		Name:               "Golden Meadow",
		Description:        "Warm tones for golden hour portraits",
		Category:           "Portrait",
		CameraModel:        "OM-5",
		LightingConditions: "Golden Hour",
		Tags:               "warm,portrait,sunset",
		AvgRating:          &avg,
		Visible:            true,
	}
}

func TestMatches_Table(t *testing.T) {
	unrated := sample()
	unrated.AvgRating = nil

	tests := []struct {
		name    string
		profile *model.ColorProfile
		filters Filters
		query   string
		want    bool
	}{
		{"空筛选全放行", sample(), Filters{}, "", true},
		{"哨兵 All 不设限", sample(), Filters{CameraModel: FilterAll, Category: FilterAll, LightingConditions: FilterAll}, "", true},
		{"机型不符直接不过，评分再高也没用", sample(), Filters{CameraModel: "OM-1", MinRating: 4}, "", false},
		{"机型精确匹配", sample(), Filters{CameraModel: "OM-5"}, "", true},
		{"类别不符", sample(), Filters{Category: "Landscape"}, "", false},
		{"无评分的档案不被评分下限排除", unrated, Filters{MinRating: 3}, "", true},
		{"评分达标", sample(), Filters{MinRating: 4.5}, "", true},
		{"评分不够", sample(), Filters{MinRating: 4.9}, "", false},
		{"光线条件匹配", sample(), Filters{LightingConditions: "Golden Hour"}, "", true},
		{"光线条件不符", sample(), Filters{LightingConditions: "Studio"}, "", false},
		{"标签有交集即可", sample(), Filters{Tags: []string{"night", "sunset"}}, "", true},
		{"标签无交集", sample(), Filters{Tags: []string{"night", "street"}}, "", false},
		{"搜名称，大小写不敏感", sample(), Filters{}, "golden MEADOW", true},
		{"搜描述", sample(), Filters{}, "golden hour portraits", true},
		{"搜不到", sample(), Filters{}, "blue hour", false},
		{"全条件同时满足", sample(), Filters{CameraModel: "OM-5", Category: "Portrait", MinRating: 4, LightingConditions: "Golden Hour", Tags: []string{"warm"}}, "meadow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.profile, tt.filters, tt.query))
		})
	}
}

// 谓词相互独立：单独施加再取与，结果必须和一次性施加一致，
// 也就是说任何施加顺序都等价
func TestMatches_OrderIndependent(t *testing.T) {
	profiles := []*model.ColorProfile{sample()}
	{
		p := sample()
		p.CameraModel = "OM-1"
		profiles = append(profiles, p)
	}
	{
		p := sample()
		p.AvgRating = nil
		p.Tags = ""
		profiles = append(profiles, p)
	}

	f := Filters{CameraModel: "OM-5", Category: "Portrait", MinRating: 4, LightingConditions: "Golden Hour", Tags: []string{"warm", "night"}}
	query := "golden"

	preds := []func(p *model.ColorProfile) bool{
		func(p *model.ColorProfile) bool { return Matches(p, Filters{CameraModel: f.CameraModel}, "") },
		func(p *model.ColorProfile) bool { return Matches(p, Filters{Category: f.Category}, "") },
		func(p *model.ColorProfile) bool { return Matches(p, Filters{MinRating: f.MinRating}, "") },
		func(p *model.ColorProfile) bool {
			return Matches(p, Filters{LightingConditions: f.LightingConditions}, "")
		},
		func(p *model.ColorProfile) bool { return Matches(p, Filters{Tags: f.Tags}, "") },
		func(p *model.ColorProfile) bool { return Matches(p, Filters{}, query) },
	}

	rng := rand.New(rand.NewSource(1))
	for _, p := range profiles {
		want := Matches(p, f, query)
		for trial := 0; trial < 20; trial++ {
			order := rng.Perm(len(preds))
			got := true
			for _, i := range order {
				got = got && preds[i](p)
			}
			assert.Equal(t, want, got)
		}
	}
}

func TestSplitJoinTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Equal(t, []string{"warm", "sunset"}, SplitTags(" warm , sunset ,"))
	assert.Equal(t, "warm,sunset", JoinTags([]string{" warm ", "", "sunset"}))
}
