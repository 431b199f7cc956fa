package classification

import (
	"testing"

	"github.com/Veraticus/hashid/internal/common"
	"github.com/Veraticus/hashid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		errMsg   string
		patterns []Pattern
	}{
		{
			name: "valid patterns",
			patterns: []Pattern{
				{Regex: `^[a-f0-9]{32}$`, Modes: []model.HashMode{{Name: "MD5"}}},
				{Regex: `^[a-f0-9]{40}$`, Modes: []model.HashMode{{Name: "SHA-1"}}},
			},
		},
		{
			name:     "empty catalog",
			patterns: []Pattern{},
		},
		{
			name: "invalid regex",
			patterns: []Pattern{
				{Regex: `^[a-f0-9{32}$`, Modes: []model.HashMode{{Name: "Broken"}}},
			},
			wantErr: common.ErrInvalidPattern,
			errMsg:  "failed to compile pattern 0",
		},
		{
			name: "pattern without modes",
			patterns: []Pattern{
				{Regex: `^[a-f0-9]{32}$`, Modes: []model.HashMode{{Name: "MD5"}}},
				{Regex: `^[a-f0-9]{40}$`},
			},
			wantErr: common.ErrEmptyModes,
			errMsg:  "failed to compile pattern 1",
		},
		{
			name: "mode without name",
			patterns: []Pattern{
				{Regex: `^[a-f0-9]{32}$`, Modes: []model.HashMode{{Hashcat: hashcat(0)}}},
			},
			wantErr: common.ErrInvalidPattern,
			errMsg:  "mode name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.patterns)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, len(tt.patterns), c.Len())
		})
	}
}

func TestCatalog_PreservesOrder(t *testing.T) {
	patterns := []Pattern{
		{Regex: `^c$`, Modes: []model.HashMode{{Name: "third"}}},
		{Regex: `^a$`, Modes: []model.HashMode{{Name: "first"}}},
		{Regex: `^b$`, Modes: []model.HashMode{{Name: "second"}}},
	}

	c, err := NewCatalog(patterns)
	require.NoError(t, err)

	got := c.Patterns()
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Modes[0].Name)
	assert.Equal(t, "first", got[1].Modes[0].Name)
	assert.Equal(t, "second", got[2].Modes[0].Name)
}

func TestCatalog_IsolatedFromCallerSlices(t *testing.T) {
	modes := []model.HashMode{{Name: "MD5"}}
	c, err := NewCatalog([]Pattern{{Regex: `^[a-f0-9]{32}$`, Modes: modes}})
	require.NoError(t, err)

	modes[0].Name = "changed"
	assert.Equal(t, "MD5", c.Patterns()[0].Modes[0].Name)

	copied := c.Patterns()
	copied[0].Modes[0].Name = "changed again"
	assert.Equal(t, "MD5", c.Patterns()[0].Modes[0].Name)
}

func TestCatalog_Extend(t *testing.T) {
	base, err := NewCatalog([]Pattern{
		{Regex: `^[a-f0-9]{32}$`, Modes: []model.HashMode{{Name: "MD5"}}},
	})
	require.NoError(t, err)

	extended, err := base.Extend([]Pattern{
		{Regex: `^[a-f0-9]{32}$`, Modes: []model.HashMode{{Name: "Custom MD5 wrapper", Extended: true}}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())
	assert.Equal(t, "Custom MD5 wrapper", extended.Patterns()[1].Modes[0].Name)

	_, err = base.Extend([]Pattern{{Regex: `(`, Modes: []model.HashMode{{Name: "x"}}}})
	assert.ErrorIs(t, err, common.ErrInvalidPattern)
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Equal(t, len(DefaultPatterns()), c.Len())
	assert.Equal(t, 131, c.Len())

	again, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Same(t, c, again)
	assert.Same(t, c, MustDefaultCatalog())
}
