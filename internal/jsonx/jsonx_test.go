package jsonx

import "testing"

func TestFirstArray(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare array",
			input:  `[1, 2, 3]`,
			want:   `[1, 2, 3]`,
			wantOK: true,
		},
		{
			name:   "array with surrounding prose",
			input:  `Sure! Here are the issues: [{"kind": "x"}] Hope that helps.`,
			want:   `[{"kind": "x"}]`,
			wantOK: true,
		},
		{
			name:   "nested arrays resolve to outer span",
			input:  `noise [[1, [2]], 3] trailing [4]`,
			want:   `[[1, [2]], 3]`,
			wantOK: true,
		},
		{
			name:   "no array present",
			input:  `I found some issues, but I'm not returning JSON right now.`,
			wantOK: false,
		},
		{
			name:   "unbalanced brackets never close",
			input:  `here it comes: [1, 2, [3`,
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
		{
			name:   "empty array",
			input:  `the model said []`,
			want:   `[]`,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstArray(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("FirstArray(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FirstArray(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
