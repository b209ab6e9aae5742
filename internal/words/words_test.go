package words_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = `Streams process elements lazily
streams compose filtering and mapping
   elements    are   processed once
`

func TestLongWords(t *testing.T) {
	tests := []struct {
		name   string
		minLen int
		want   []string
	}{
		{"longer than five", 5, []string{"Streams", "compose", "elements", "filtering", "lazily", "mapping", "process", "processed", "streams"}},
		{"longer than eight", 8, []string{"filtering", "processed"}},
		{"none", 20, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := words.LongWords(strings.NewReader(text), tc.minLen)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLongWordsLongLine(t *testing.T) {
	line := strings.Repeat("elephant ", 10_000) + "giraffes"

	got, err := words.LongWords(strings.NewReader(line), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"elephant", "giraffes"}, got)
}

func TestReadFile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, os.WriteFile(name, []byte(text), 0o644))

		got, err := words.ReadFile(name, 8)
		require.NoError(t, err)
		assert.Equal(t, []string{"filtering", "processed"}, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := words.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), 5)

		var c *cause.Error
		require.ErrorAs(t, err, &c)
		assert.Equal(t, codes.NotFound, c.Code)
		assert.Equal(t, "words/file_not_found", c.Name)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := words.ReadFile(t.TempDir(), 5)

		var c *cause.Error
		require.ErrorAs(t, err, &c)
		assert.Equal(t, codes.Internal, c.Code)
		assert.Equal(t, "words/file_unreadable", c.Name)
	})
}
