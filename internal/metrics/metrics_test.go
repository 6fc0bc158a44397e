package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsAreRegistered(t *testing.T) {
	ProjectLookups.WithLabelValues("enabled")
	ConfigResolutions.WithLabelValues(ResolutionOK)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	assert.True(t, names["ks_project_lookups_total"])
	assert.True(t, names["ks_config_resolutions_total"])
	assert.True(t, names["ks_config_resolution_duration_seconds"])
	assert.True(t, names["ks_rejected_requests_total"])
}

func TestProjectLookups_IncrementsPerOutcome(t *testing.T) {
	before := testutil.ToFloat64(ProjectLookups.WithLabelValues(OutcomeConfigError))

	ProjectLookups.WithLabelValues(OutcomeConfigError).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(ProjectLookups.WithLabelValues(OutcomeConfigError)))
}

func TestRejectedRequests_Increments(t *testing.T) {
	before := testutil.ToFloat64(RejectedRequests)

	RejectedRequests.Inc()
	RejectedRequests.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(RejectedRequests))
}
