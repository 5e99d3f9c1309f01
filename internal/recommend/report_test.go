package recommend

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

func TestEvaluateRecommends(t *testing.T) {
	report := Evaluate(pairAB, succeeded(position(model.FeeTierLow, 10), position(model.FeeTierMedium, 30)))
	require.NotNil(t, report.Recommended)
	assert.Equal(t, model.FeeTierMedium, *report.Recommended)
	assert.False(t, report.ShowManual)
	assert.Equal(t, "75", report.Percentages["3000"])
	assert.Equal(t, 2, report.Records)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommended":"3000"`)
	assert.Contains(t, string(data), `"status":"succeeded"`)
}

func TestEvaluateStates(t *testing.T) {
	report := Evaluate(pairAB, source.Result{Status: source.StatusFailed, Err: errors.New("down")})
	assert.True(t, report.ShowManual)
	assert.Nil(t, report.Recommended)

	report = Evaluate(pairAB, source.Result{Status: source.StatusInFlight})
	assert.True(t, report.Loading)
	assert.False(t, report.ShowManual)

	report = Evaluate(model.TokenPair{}, source.Result{Status: source.StatusNotRequested})
	assert.False(t, report.Loading)
	assert.False(t, report.ShowManual)

	report = Evaluate(pairAB, succeeded())
	assert.True(t, report.ShowManual)
	assert.Nil(t, report.Recommended)
	require.NotNil(t, report.Distribution)
	assert.True(t, report.Distribution.IsZero())

	report = Evaluate(pairAB, succeeded(position(model.FeeTier(5), 1)))
	assert.Equal(t, source.StatusFailed, report.Status)
	assert.True(t, report.ShowManual)
}
