package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alextanhongpin/lambda/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}

func TestMarshalYAMLPreserveKeysOrder(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		b, err := internal.MarshalYAMLPreserveKeysOrder(person{Name: "Alice", Age: 25, City: "New York"})
		require.NoError(t, err)
		assert.Equal(t, "name: Alice\nage: 25\ncity: New York\n", string(b))
	})

	t.Run("slice of structs", func(t *testing.T) {
		b, err := internal.MarshalYAMLPreserveKeysOrder([]person{{Name: "Bob", Age: 30, City: "London"}})
		require.NoError(t, err)
		assert.Equal(t, "- name: Bob\n  age: 30\n  city: London\n", string(b))
	})

	t.Run("bytes", func(t *testing.T) {
		b, err := internal.MarshalYAMLPreserveKeysOrder([]byte("raw"))
		require.NoError(t, err)
		assert.Equal(t, "raw", string(b))
	})
}

func TestHasStruct(t *testing.T) {
	assert.True(t, internal.HasStruct(person{}))
	assert.True(t, internal.HasStruct(&person{}))
	assert.False(t, internal.HasStruct(nil))
	assert.True(t, internal.HasStruct([]person{}))
	assert.True(t, internal.HasStruct(map[string]person{}))
	assert.False(t, internal.HasStruct([]int{}))
}

func TestCopy(t *testing.T) {
	in := []person{{Name: "Tom", Age: 12}}
	out, err := internal.Copy(in)
	require.NoError(t, err)

	out[0].Name = "Jerry"
	assert.Equal(t, "Tom", in[0].Name)
}

func TestANSIDiff(t *testing.T) {
	assert.NoError(t, internal.ANSIDiff("a", "a"))

	err := internal.ANSIDiff("a", "b")
	var diffErr *internal.DiffError
	require.ErrorAs(t, err, &diffErr)
	assert.Contains(t, diffErr.Ansi(), "\x1b[31m")
	assert.NotContains(t, diffErr.Text(), "\x1b[")

	diffErr.SetColor(false)
	assert.Equal(t, diffErr.Text(), diffErr.Error())
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nested", "file.txt")

	require.NoError(t, internal.WriteFile(name, []byte("first"), false))
	require.NoError(t, internal.WriteFile(name, []byte("second"), false))
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))

	require.NoError(t, internal.WriteFile(name, []byte("third"), true))
	b, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "third", string(b))
}
