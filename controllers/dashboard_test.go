package controllers

import (
	"testing"
	"time"

	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJobWindowPeriods(t *testing.T) {
	now := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	callerID := uuid.NewString()

	for _, period := range []string{"day", "week", "month", "year", "bogus"} {
		w, err := buildJobWindow(period, now, models.RoleAdmin, callerID, "")
		require.NoError(t, err)
		assert.Equal(t, utils.PeriodStart(period, now), w.Start, "period %s", period)
	}
}

// A technician's window is always scoped to their own jobs, even when they
// try to pass somebody else's id as a filter.
func TestBuildJobWindowTechnicianForcesOwnFilter(t *testing.T) {
	now := time.Now()
	callerID := uuid.New()
	otherID := uuid.New()

	w, err := buildJobWindow("month", now, models.RoleTechnician, callerID.String(), otherID.String())

	require.NoError(t, err)
	require.NotNil(t, w.TechnicianID)
	assert.Equal(t, callerID, *w.TechnicianID)
}

// A technician whose token subject does not parse must not fall back to the
// unscoped window.
func TestBuildJobWindowTechnicianBadCallerFailsClosed(t *testing.T) {
	_, err := buildJobWindow("month", time.Now(), models.RoleTechnician, "not-a-uuid", "")
	assert.Error(t, err)

	_, err = buildJobWindow("month", time.Now(), models.RoleTechnician, "", "")
	assert.Error(t, err)
}

func TestBuildJobWindowStaffUsesSuppliedFilter(t *testing.T) {
	now := time.Now()
	callerID := uuid.New()
	technicianID := uuid.New()

	w, err := buildJobWindow("month", now, models.RoleSecretary, callerID.String(), technicianID.String())

	require.NoError(t, err)
	require.NotNil(t, w.TechnicianID)
	assert.Equal(t, technicianID, *w.TechnicianID)
}

func TestBuildJobWindowNoFilter(t *testing.T) {
	w, err := buildJobWindow("day", time.Now(), models.RoleAdmin, uuid.NewString(), "")
	require.NoError(t, err)
	assert.Nil(t, w.TechnicianID)
}

func TestBuildJobWindowIgnoresMalformedFilter(t *testing.T) {
	w, err := buildJobWindow("day", time.Now(), models.RoleAdmin, uuid.NewString(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, w.TechnicianID)
}
