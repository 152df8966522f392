package mobrank

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestAnalyzeFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	good := writeFixture(t)
	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	paths := []string{good, missing, good}

	results, err := AnalyzeFiles(context.Background(), paths, testOptions(), 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		require.NotNil(t, res.Result)
	}
	assert.True(t, results[0].Result.Success)
	assert.False(t, results[1].Result.Success)
	assert.True(t, results[2].Result.Success)
}

func TestAnalyzeFilesCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := AnalyzeFiles(ctx, []string{writeFixture(t)}, testOptions(), 0)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Result)
}
