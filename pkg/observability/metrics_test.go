package observability_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/pkg/domain"
	"github.com/aretw0/cmdassist/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	eng, err := cmdassist.New(cmdassist.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)
	ctx := context.Background()

	state := eng.Start(ctx, "m1")
	state, _ = eng.Navigate(ctx, state, domain.Select("linux"))
	state, _ = eng.Navigate(ctx, state, domain.Select("Network Commands"))
	state, _ = eng.Navigate(ctx, state, domain.Select("nope"))
	state, _ = eng.Navigate(ctx, state, domain.Back())
	_, _ = eng.Navigate(ctx, state, domain.Query("mount a share"))

	count, err := testutil.GatherAndCount(m.Registry(), "cmdassist_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	expected := `
# HELP cmdassist_fallback_results_total Result cards by origin (catalog or fallback).
# TYPE cmdassist_fallback_results_total counter
cmdassist_fallback_results_total{kind="catalog"} 1
cmdassist_fallback_results_total{kind="fallback"} 1
# HELP cmdassist_ignored_events_total Inputs ignored by the current step.
# TYPE cmdassist_ignored_events_total counter
cmdassist_ignored_events_total{kind="select",step="result"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"cmdassist_fallback_results_total", "cmdassist_ignored_events_total"))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.Hooks().OnStepEnter(context.Background(), &domain.StepEvent{From: domain.StepPlatformSelection, Step: domain.StepVendorSelection})
	m.Hooks().OnStepEnter(context.Background(), &domain.StepEvent{Step: domain.StepPlatformSelection})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `cmdassist_transitions_total{from="platform-selection",to="vendor-selection"} 1`)
	assert.NotContains(t, body, `from=""`)
	assert.Contains(t, body, "go_goroutines")
}
