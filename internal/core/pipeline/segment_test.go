package pipeline

import (
	"reflect"
	"testing"
)

func TestSegmentSteps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "編號清單",
			in:   "1. Preheat the oven to 350F.\n2. Mix the dry ingredients.\n3. Bake for 25 minutes.",
			want: []string{
				"Preheat the oven to 350F.",
				"Mix the dry ingredients.",
				"Bake for 25 minutes.",
			},
		},
		{
			name: "編號清單帶接續行",
			in:   "1. Mix the dry ingredients\nuntil combined.\n2. Fold in the wet ingredients.",
			want: []string{
				"Mix the dry ingredients until combined.",
				"Fold in the wet ingredients.",
			},
		},
		{
			name: "空行分段",
			in:   "Mix everything together\nin a large bowl.\n\nBake until golden brown.",
			want: []string{
				"Mix everything together in a large bowl.",
				"Bake until golden brown.",
			},
		},
		{
			name: "句子切分降級",
			in:   "Mix everything together in a bowl. Bake until golden brown. Serve warm with cream.",
			want: []string{
				"Mix everything together in a bowl",
				"Bake until golden brown",
				"Serve warm with cream",
			},
		},
		{
			name: "句子切分丟棄短碎片",
			in:   "Preheat oven to 350F and grease the pan. Mix well. Ok.",
			want: []string{
				"Preheat oven to 350F and grease the pan",
			},
		},
		{
			name: "空輸入",
			in:   "   \n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentSteps(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentSteps() = %#v，預期 %#v", got, tt.want)
			}
		})
	}
}

func TestExtractTiming(t *testing.T) {
	tests := []struct {
		in          string
		wantText    string
		wantMinutes int
	}{
		{"Bake for 25 minutes until done", "25 minutes", 25},
		{"Simmer 10-12 minutes", "10-12 minutes", 12},
		{"Roast for 1 hour", "1 hour", 60},
		{"Chill for 2 hours", "2 hours", 120},
		{"Mix until combined", "", 0},
	}

	for _, tt := range tests {
		text, minutes := ExtractTiming(tt.in)
		if text != tt.wantText || minutes != tt.wantMinutes {
			t.Errorf("ExtractTiming(%q) = (%q, %d)，預期 (%q, %d)",
				tt.in, text, minutes, tt.wantText, tt.wantMinutes)
		}
	}
}
