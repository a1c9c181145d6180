package watermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Token
		wantErr error
	}{
		{name: "lowercase", in: "a1b2c3d4e5f60708", want: "a1b2c3d4e5f60708"},
		{name: "uppercase is normalised", in: "A1B2C3D4", want: "a1b2c3d4"},
		{name: "surrounding space", in: "  beef \n", want: "beef"},
		{name: "empty", in: "", wantErr: ErrEmptyToken},
		{name: "blank", in: "   ", wantErr: ErrEmptyToken},
		{name: "not hex", in: "xyz1", wantErr: ErrInvalidToken},
		{name: "inner space", in: "ab cd", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToken(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRandomToken(t *testing.T) {
	first, err := NewRandomToken()
	require.NoError(t, err)
	second, err := NewRandomToken()
	require.NoError(t, err)

	assert.Len(t, first.String(), DefaultTokenLength)
	assert.NotEqual(t, first, second)

	parsed, err := ParseToken(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, parsed)
}

func TestToken_HasPrefix(t *testing.T) {
	token := Token("a1b2c3d4e5f60708")

	assert.True(t, token.HasPrefix("a1b2c3d4"))
	assert.True(t, token.HasPrefix("A1B2C3D4"))
	assert.True(t, token.HasPrefix(""))
	assert.True(t, token.HasPrefix("a1b2c3d4e5f60708"))
	assert.False(t, token.HasPrefix("a1b2c3d5"))
	assert.False(t, token.HasPrefix("a1b2c3d4e5f607080"))
}
