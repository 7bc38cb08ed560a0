package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
)

func TestBoxPlotWritesImage(t *testing.T) {
	m, err := core.FromColumns(4, [][]float64{{-1, 0, 1, 2}, {0, 0, 0, 0}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "features.png")
	require.NoError(t, BoxPlot(m, []string{"LIMIT_BAL", "SEX_1"}, "train features", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBoxPlotValidates(t *testing.T) {
	m := core.NewMatrix(0, 1)
	assert.Error(t, BoxPlot(m, []string{"a"}, "", filepath.Join(t.TempDir(), "x.png")))
	assert.Error(t, BoxPlot(core.NewMatrix(2, 2), []string{"a"}, "", filepath.Join(t.TempDir(), "x.png")))
}
