package driver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-speaker/speaker/core"
)

func TestNewDriverIsZero(t *testing.T) {
	d := New("B&C Speakers", "15SW115")

	assert.Equal(t, "B&C Speakers", d.Manufacturer())
	assert.Equal(t, "15SW115", d.Model())
	assert.Equal(t, "B&C Speakers 15SW115", d.String())
	assert.Zero(t, d.Fs())
	assert.Zero(t, d.Ws())
	assert.Zero(t, d.Ts())
	assert.Zero(t, d.Cas())
	assert.ErrorIs(t, d.Valid(), core.ErrDomain)
}

func TestSetFsDerivesAngularFrequency(t *testing.T) {
	for _, fs := range []float64{1, 18.5, 35, 43.25, 120, 2500} {
		d := New("m", "x")
		require.NoError(t, d.SetFs(fs))

		assert.Equal(t, fs, d.Fs(), "round trip")
		assert.InDelta(t, 2*math.Pi*fs, d.Ws(), 1e-12*d.Ws())
		assert.InDelta(t, 1/d.Ws(), d.Ts(), 1e-15)
		assert.NoError(t, d.Valid())
	}
}

func TestSetVasDerivesCompliance(t *testing.T) {
	for _, vas := range []float64{0, 0.011, 0.11, 1.5} {
		d := New("m", "x")
		require.NoError(t, d.SetVas(vas))

		assert.Equal(t, vas, d.Vas(), "round trip")
		assert.Equal(t, vas/(core.Rho*core.C*core.C), d.Cas())
	}
}

func TestSetFsRejectsDomain(t *testing.T) {
	d := New("m", "x")
	require.NoError(t, d.SetFs(35))

	for _, fs := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		err := d.SetFs(fs)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrDomain))

		// the driver keeps its previous, consistent state
		assert.Equal(t, 35.0, d.Fs())
		assert.InDelta(t, 1/(2*math.Pi*35), d.Ts(), 1e-15)
	}
}

func TestSetVasRejectsNegative(t *testing.T) {
	d := New("m", "x")
	require.NoError(t, d.SetVas(0.2))

	var de *core.DomainError
	require.ErrorAs(t, d.SetVas(-0.1), &de)
	assert.Equal(t, "driver.SetVas", de.Op)
	assert.Equal(t, 0.2, d.Vas())
}

func TestVd(t *testing.T) {
	d := New("m", "x")
	d.Sd = 0.0855
	d.Xmax = 0.0135

	assert.InDelta(t, 0.00115425, d.Vd(), 1e-15)
}

func TestRecordRoundTrip(t *testing.T) {
	d := New("B&C Speakers", "15SW115")
	d.Diameter = 15
	d.Weight = 9.6
	d.Power = 1200
	d.Qts = 0.24
	d.Qes = 0.25
	d.Sd = 0.0855
	d.Mms = 0.159
	d.Xmax = 0.0135
	require.NoError(t, d.SetFs(35))
	require.NoError(t, d.SetVas(0.11))

	back, err := FromRecord(d.Record())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestFromRecordRejectsZeroFs(t *testing.T) {
	_, err := FromRecord(Record{Manufacturer: "m", Model: "x", Vas: 0.1})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDomain)
	assert.Contains(t, err.Error(), `driver "m x"`)
}
