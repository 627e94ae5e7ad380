package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "single word",
			input: "/help",
			want:  []string{"/help"},
		},
		{
			name:  "double quoted phrase",
			input: `/classify "반편성 때문에 너무 힘들어"`,
			want:  []string{"/classify", "반편성 때문에 너무 힘들어"},
		},
		{
			name:  "single quoted phrase",
			input: `/region '강남구 국공립 "추천"'`,
			want:  []string{"/region", `강남구 국공립 "추천"`},
		},
		{
			name:  "flags with quoted value",
			input: `/checklist profile --type 국공립 --region "서울특별시 강남구"`,
			want:  []string{"/checklist", "profile", "--type", "국공립", "--region", "서울특별시 강남구"},
		},
		{
			name:  "escaped space",
			input: `/age 2023-01-15\ `,
			want:  []string{"/age", "2023-01-15 "},
		},
		{
			name:  "empty quoted arg",
			input: `/classify ""`,
			want:  []string{"/classify", ""},
		},
		{
			name:  "blank line",
			input: "   ",
			want:  nil,
		},
		{
			name:    "unterminated quote",
			input:   `/classify "oops`,
			wantErr: errUnterminatedQuote,
		},
		{
			name:    "unterminated escape",
			input:   `/classify hi\`,
			wantErr: errUnterminatedEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
