package main

import (
	"reflect"
	"testing"
)

func TestReservedKeywordList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"기본값", "", defaultReservedKeywords},
		{"쉼표 구분", "BRAND,브랜드", []string{"BRAND", "브랜드"}},
		{"공백 정리", " BRAND , 브랜드 ,", []string{"BRAND", "브랜드"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ReservedKeywords: tt.raw}
			if got := cfg.ReservedKeywordList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReservedKeywordList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.Model() != defaultOpenAIModel {
		t.Errorf("Model() = %q", cfg.Model())
	}
	cfg.OpenAIModel = "gpt-4o"
	if cfg.Model() != "gpt-4o" {
		t.Errorf("Model() = %q", cfg.Model())
	}
}
