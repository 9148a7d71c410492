package ats

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t\n  ",
			want: []string{},
		},
		{
			name: "lowercases and strips punctuation",
			text: "Senior Go/Python Engineer (Remote!)",
			want: []string{"senior", "python", "engineer", "remote"},
		},
		{
			name: "drops stop words",
			text: "the engineer and the manager should have been working with kubernetes",
			want: []string{"engineer", "manager", "working", "kubernetes"},
		},
		{
			name: "drops short tokens",
			text: "go js ml sql aws c",
			want: []string{"sql", "aws"},
		},
		{
			name: "dedupes keeping first occurrence order",
			text: "docker kubernetes docker terraform kubernetes docker",
			want: []string{"docker", "kubernetes", "terraform"},
		},
		{
			name: "digits survive",
			text: "python3 ec2 s3 db2 experience",
			want: []string{"python3", "ec2", "db2", "experience"},
		},
		{
			name: "hyphenated words split into parts",
			text: "micro-services event-driven",
			want: []string{"micro", "services", "event", "driven"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	// 80 distinct long tokens, only the first 50 survive
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString("keyword")
		sb.WriteByte(byte('a' + i%26))
		sb.WriteString(string(rune('a' + i/26)))
		sb.WriteByte(' ')
	}

	got := ExtractKeywords(sb.String())
	if len(got) != MaxKeywords {
		t.Fatalf("len = %d, want %d", len(got), MaxKeywords)
	}
}

func TestExtractKeywordsInvariants(t *testing.T) {
	inputs := []string{
		"",
		"The quick brown fox jumps over the lazy dog, and then some!",
		strings.Repeat("kubernetes docker terraform ansible prometheus grafana ", 40),
		"a an the of to in is are was were be been",
		"C++ C# .NET F# R Go",
	}

	for _, text := range inputs {
		got := ExtractKeywords(text)

		if len(got) > MaxKeywords {
			t.Errorf("len(ExtractKeywords(%q)) = %d exceeds cap", text, len(got))
		}
		for _, kw := range got {
			if len(kw) < minKeywordLength {
				t.Errorf("keyword %q shorter than %d chars", kw, minKeywordLength)
			}
			if stopWords[kw] {
				t.Errorf("stop word %q leaked into output", kw)
			}
			if kw != strings.ToLower(kw) {
				t.Errorf("keyword %q not lowercased", kw)
			}
		}

		// Pure function: same input, same output
		again := ExtractKeywords(text)
		if !reflect.DeepEqual(got, again) {
			t.Errorf("ExtractKeywords(%q) not deterministic: %v vs %v", text, got, again)
		}
	}
}
