package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"geowatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterJSON = `{
  "species": {
    "1": {"name": "Sproutling", "forms": {"shadow": "Shadow"}},
    "25": {"name": "Sparkrat"}
  },
  "grunts": {
    "4": [1, 25],
    "9": []
  }
}`

func writeMaster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "master.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeMaster(t, masterJSON))
	require.NoError(t, err)

	assert.True(t, c.HasSpecies(1))
	assert.True(t, c.HasSpecies(25))
	assert.False(t, c.HasSpecies(999))
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeMaster(t, `{"species": {}}`))
	assert.Error(t, err, "empty species table is rejected")

	_, err = Load(writeMaster(t, `not json`))
	assert.Error(t, err)
}

func TestSpeciesName(t *testing.T) {
	c, err := Load(writeMaster(t, masterJSON))
	require.NoError(t, err)

	assert.Equal(t, "Sproutling", c.SpeciesName(1, ""))
	assert.Equal(t, "Sproutling (Shadow)", c.SpeciesName(1, "SHADOW"))
	assert.Equal(t, "Sproutling (alpine)", c.SpeciesName(1, "alpine"))
	assert.Equal(t, "#999", c.SpeciesName(999, ""))
}

func TestEncounterRewards(t *testing.T) {
	c, err := Load(writeMaster(t, masterJSON))
	require.NoError(t, err)

	rewards, ok := c.EncounterRewards(4)
	require.True(t, ok)
	assert.Equal(t, []entity.SpeciesID{1, 25}, rewards)

	_, ok = c.EncounterRewards(9)
	assert.False(t, ok, "empty reward list is treated as unknown")

	_, ok = c.EncounterRewards(77)
	assert.False(t, ok)
}
