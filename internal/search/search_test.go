package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/coursegen/internal/course"
)

func TestBest(t *testing.T) {
	tests := []struct {
		name    string
		results []WebResult
		wantURL string
		wantOK  bool
	}{
		{"empty", nil, "", false},
		{"all below threshold", []WebResult{{URL: "a", Score: 0.2}, {URL: "b", Score: 0.49}}, "", false},
		{"highest wins", []WebResult{{URL: "a", Score: 0.6}, {URL: "b", Score: 0.9}, {URL: "c", Score: 0.7}}, "b", true},
		{"threshold inclusive", []WebResult{{URL: "a", Score: 0.5}}, "a", true},
		{"missing url skipped", []WebResult{{URL: "", Score: 0.99}, {URL: "b", Score: 0.6}}, "b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Best(tt.results, 0.5)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, got.URL)
		})
	}
}

func TestRankVideos(t *testing.T) {
	videos := []course.Video{
		{VideoID: "a", LikeCount: 10, ViewCount: 1000},
		{VideoID: "b", LikeCount: 50, ViewCount: 500},
		{VideoID: "c", LikeCount: 50, ViewCount: 100},
		{VideoID: "d", LikeCount: 10, ViewCount: 1000},
	}
	RankVideos(videos)

	var ids []string
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids)
}
