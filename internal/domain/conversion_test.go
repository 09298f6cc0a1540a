package domain

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relTolerance = 1e-6

func mustQuantity(t *testing.T, name string, value float64, tag string) Quantity {
	t.Helper()

	q, err := NewQuantity(name, value, tag)
	require.NoError(t, err)

	return q
}

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		tag        string
		target     System
		wantValue  float64
		wantSymbol string
		wantStatus Status
	}{
		{"centimetres to metric", 10, "cm", SystemMetric, 0.10, "m", StatusConverted},
		{"cubic metres per second to standard", 1, "m3/s", SystemStandard, 6e7, "SCCM", StatusConverted},
		{"standard back to metric", 6e7, "SCCM", SystemMetric, 1, "m³/s", StatusConverted},
		{"cubic metres to liters", 2, "m3", SystemLiters, 2000, "L", StatusConverted},
		{"one SCCM to metric", 1, "SCCM", SystemMetric, 1.0 / 6e7, "m³/s", StatusConverted},
		{"cfm to standard", 1, "cfm", SystemStandard, 28316.846592, "SCCM", StatusConverted},
		{"inches to metric", 1, "in", SystemMetric, 0.0254, "m", StatusConverted},
		{"feet to imperial canonical", 1, "ft", SystemImperial, 12, "in", StatusConverted},
		{"liters per minute to metric", 60000, "L/min", SystemMetric, 1, "m³/s", StatusConverted},
		{"feet per second to metric", 1, "ft/s", SystemMetric, 0.3048, "m/s", StatusConverted},
		{"cubic foot to liters", 1, "ft3", SystemLiters, 28.316846592, "L", StatusConverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustQuantity(t, "Flow Rate", tt.value, tt.tag)

			got, status := Convert(q, tt.target)

			assert.Equal(t, tt.wantStatus, status)
			assert.InEpsilon(t, tt.wantValue, got.Value(), relTolerance)
			assert.Equal(t, tt.wantSymbol, got.Unit().Symbol)
			assert.Equal(t, tt.target, got.System())
			assert.Equal(t, q.Name(), got.Name())
			assert.True(t, status.Applied())
		})
	}
}

func TestConvert_RoundTripThroughStandard(t *testing.T) {
	q := mustQuantity(t, "Flow Rate", 1, "m3/s")

	sccm, status := Convert(q, SystemStandard)
	require.Equal(t, StatusConverted, status)

	back, status := Convert(sccm, SystemMetric)
	require.Equal(t, StatusConverted, status)
	assert.InEpsilon(t, 1.0, back.Value(), relTolerance)
}

func TestConvert_IdentityIsExact(t *testing.T) {
	table := DefaultTable()

	for _, entry := range table.Catalogue() {
		for _, u := range entry.Units {
			if !u.Canonical() {
				continue
			}

			t.Run(u.Qualified(), func(t *testing.T) {
				value := 0.1 + 0.2
				q, err := NewQuantityOf("x", value, u)
				require.NoError(t, err)

				got, status := table.Convert(q, u.System)

				assert.Equal(t, StatusIdentity, status)
				assert.Equal(t, q, got)
				assert.Equal(t, value, got.Value()) //nolint:testifylint // identity must not multiply
			})
		}
	}
}

func TestConvert_NonCanonicalNormalises(t *testing.T) {
	q := mustQuantity(t, "Length", 250, "mm")

	got, status := Convert(q, SystemMetric)

	assert.Equal(t, StatusConverted, status)
	assert.Equal(t, "m", got.Unit().Symbol)
	assert.InEpsilon(t, 0.25, got.Value(), relTolerance)
}

func TestConvert_UnrecognizedUnit(t *testing.T) {
	q, err := NewRawQuantity("x", 5, "bogus-unit")
	require.NoError(t, err)

	got, status := Convert(q, SystemMetric)

	assert.Equal(t, StatusUnrecognizedUnit, status)
	assert.False(t, status.Applied())
	assert.InDelta(t, 5.0, got.Value(), 0)
	assert.Equal(t, "bogus-unit", got.Unit().Symbol)
	assert.Equal(t, q, got)
}

func TestConvert_NoConversionPath(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		target System
	}{
		{"length has no liters unit", "m", SystemLiters},
		{"length has no standard unit", "in", SystemStandard},
		{"volume has no standard unit", "L", SystemStandard},
		{"velocity has no liters unit", "m/s", SystemLiters},
		{"unsupported target system", "m", System("cgs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustQuantity(t, "x", 3, tt.tag)

			got, status := Convert(q, tt.target)

			assert.Equal(t, StatusNoConversionPath, status)
			assert.Equal(t, q, got)
		})
	}
}

func TestConvert_Overflow(t *testing.T) {
	q := mustQuantity(t, "x", math.MaxFloat64, "m3/s")

	got, status := Convert(q, SystemStandard)

	assert.Equal(t, StatusOverflow, status)
	assert.Equal(t, q, got)
	require.ErrorIs(t, status.Err(q, SystemStandard), ErrInvalidValue)
}

func TestConvert_Underflow(t *testing.T) {
	q := mustQuantity(t, "trickle", math.SmallestNonzeroFloat64, "SCCM")

	got, status := Convert(q, SystemMetric)

	assert.Equal(t, StatusUnderflow, status)
	assert.False(t, status.Applied())
	assert.Equal(t, q, got)

	err := status.Err(q, SystemMetric)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "trickle")

	zero := mustQuantity(t, "still", 0, "SCCM")

	got, status = Convert(zero, SystemMetric)
	assert.Equal(t, StatusConverted, status)
	assert.Zero(t, got.Value())
}

func TestConvertTo_RoundTripAllPairs(t *testing.T) {
	table := DefaultTable()

	for _, entry := range table.Catalogue() {
		for _, a := range entry.Units {
			for _, b := range entry.Units {
				t.Run(a.Qualified()+"->"+b.Qualified(), func(t *testing.T) {
					q, err := NewQuantityOf("x", 123.456, a)
					require.NoError(t, err)

					there, status := table.ConvertTo(q, b)
					require.True(t, status.Applied())
					assert.Equal(t, b, there.Unit())

					back, status := table.ConvertTo(there, a)
					require.True(t, status.Applied())
					assert.InEpsilon(t, 123.456, back.Value(), relTolerance)

					if a == b {
						assert.Equal(t, StatusIdentity, status)
					}
				})
			}
		}
	}
}

func TestConvertTo_Transitivity(t *testing.T) {
	table := DefaultTable()

	for _, entry := range table.Catalogue() {
		for _, a := range entry.Units {
			for _, b := range entry.Units {
				for _, c := range entry.Units {
					q, err := NewQuantityOf("x", 7.5, a)
					require.NoError(t, err)

					viaB, _ := table.ConvertTo(q, b)
					viaB, _ = table.ConvertTo(viaB, c)
					direct, _ := table.ConvertTo(q, c)

					assert.InEpsilon(t, direct.Value(), viaB.Value(), relTolerance,
						"%s -> %s -> %s", a.Symbol, b.Symbol, c.Symbol)
				}
			}
		}
	}
}

func TestConvertTo_SystemRoundTripOnCanonicalUnits(t *testing.T) {
	table := DefaultTable()

	for _, category := range Categories() {
		for _, from := range Systems() {
			src, ok := table.Canonical(category, from)
			if !ok {
				continue
			}

			for _, to := range Systems() {
				if _, ok := table.Canonical(category, to); !ok {
					continue
				}

				q, err := NewQuantityOf("x", 42, src)
				require.NoError(t, err)

				there, status := table.Convert(q, to)
				require.True(t, status.Applied())

				back, status := table.Convert(there, from)
				require.True(t, status.Applied())

				assert.InEpsilon(t, 42.0, back.Value(), relTolerance, "%s: %s <-> %s", category, from, to)
			}
		}
	}
}

func TestConvertTo_CrossCategory(t *testing.T) {
	table := DefaultTable()
	q := mustQuantity(t, "x", 1, "m")
	target, ok := table.Lookup("L")
	require.True(t, ok)

	got, status := table.ConvertTo(q, target)

	assert.Equal(t, StatusNoConversionPath, status)
	assert.Equal(t, q, got)
}

func TestConvertTo_UnrecognizedTarget(t *testing.T) {
	q := mustQuantity(t, "x", 1, "m")

	_, status := DefaultTable().ConvertTo(q, unrecognizedUnit("furlong"))

	assert.Equal(t, StatusNoConversionPath, status)
}

func TestTable_Verify(t *testing.T) {
	require.NoError(t, DefaultTable().Verify(1e-9))
}

func TestTable_Multiplier(t *testing.T) {
	table := DefaultTable()
	ft, _ := table.Lookup("ft")
	in, _ := table.Lookup("in")
	l, _ := table.Lookup("L")

	m, ok := table.Multiplier(ft, in)
	require.True(t, ok)
	assert.InEpsilon(t, 12.0, m, relTolerance)

	m, ok = table.Multiplier(in, in)
	require.True(t, ok)
	assert.InDelta(t, 1.0, m, 0)

	_, ok = table.Multiplier(ft, l)
	assert.False(t, ok)
}

func TestTable_Catalogue(t *testing.T) {
	table := DefaultTable()
	catalogue := table.Catalogue()

	require.Len(t, catalogue, 4)
	assert.Equal(t, CategoryLength, catalogue[0].Category)
	assert.Equal(t, CategoryFlow, catalogue[2].Category)
	assert.Len(t, catalogue[2].Units, 5)

	u, ok := table.Canonical(CategoryFlow, SystemImperial)
	require.True(t, ok)
	assert.Equal(t, "ft³/min", u.Symbol)

	_, ok = table.Canonical(CategoryLength, SystemLiters)
	assert.False(t, ok)
}

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs []UnitDefinition
	}{
		{
			name: "missing metric canonical",
			defs: []UnitDefinition{{Symbol: "in", System: SystemImperial, Category: CategoryLength, ToMetric: 0.0254, Canonical: true}},
		},
		{
			name: "metric canonical factor not one",
			defs: []UnitDefinition{{Symbol: "cm", System: SystemMetric, Category: CategoryLength, ToMetric: 0.01, Canonical: true}},
		},
		{
			name: "duplicate symbol",
			defs: []UnitDefinition{
				{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 1, Canonical: true},
				{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 1},
			},
		},
		{
			name: "alias claimed by another unit",
			defs: []UnitDefinition{
				{Symbol: "m³/s", System: SystemMetric, Category: CategoryFlow, ToMetric: 1, Canonical: true, Aliases: []string{"cms"}},
				{Symbol: "cm³/s", System: SystemMetric, Category: CategoryFlow, ToMetric: 1e-6, Aliases: []string{"CMS"}},
			},
		},
		{
			name: "alias shadowing a symbol",
			defs: []UnitDefinition{
				{Symbol: "ft", System: SystemImperial, Category: CategoryLength, ToMetric: 0.3048, Canonical: true},
				{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 1, Canonical: true, Aliases: []string{"FT"}},
			},
		},
		{
			name: "two canonical units in one system",
			defs: []UnitDefinition{
				{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 1, Canonical: true},
				{Symbol: "cm", System: SystemMetric, Category: CategoryLength, ToMetric: 0.01, Canonical: true},
			},
		},
		{
			name: "non-positive factor",
			defs: []UnitDefinition{{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 0, Canonical: true}},
		},
		{
			name: "infinite factor",
			defs: []UnitDefinition{{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: math.Inf(1), Canonical: true}},
		},
		{
			name: "unsupported system",
			defs: []UnitDefinition{{Symbol: "m", System: "cgs", Category: CategoryLength, ToMetric: 1, Canonical: true}},
		},
		{
			name: "empty symbol",
			defs: []UnitDefinition{{System: SystemMetric, Category: CategoryLength, ToMetric: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.defs)

			require.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, table)
		})
	}
}

func TestNewTable_DefaultSpellingsAreUnique(t *testing.T) {
	_, err := NewTable(DefaultDefinitions())
	require.NoError(t, err)

	seen := make(map[string]string)

	for _, d := range DefaultDefinitions() {
		for _, spelling := range append([]string{d.Symbol}, d.Aliases...) {
			key := strings.ToLower(spelling)
			owner, dup := seen[key]
			assert.False(t, dup, "%q used by %q and %q", spelling, owner, d.Symbol)
			seen[key] = d.Symbol
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status  Status
		name    string
		applied bool
	}{
		{StatusConverted, "converted", true},
		{StatusIdentity, "identity", true},
		{StatusUnrecognizedUnit, "unrecognized_unit", false},
		{StatusNoConversionPath, "no_conversion_path", false},
		{StatusOverflow, "overflow", false},
		{StatusUnderflow, "underflow", false},
		{Status(0), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.applied, tt.status.Applied())

			b, err := json.Marshal(tt.status)
			require.NoError(t, err)
			assert.JSONEq(t, `"`+tt.name+`"`, string(b))
		})
	}
}

func TestStatus_Err(t *testing.T) {
	raw, err := NewRawQuantity("x", 1, "bogus-unit")
	require.NoError(t, err)

	metre := mustQuantity(t, "x", 1, "m")

	require.NoError(t, StatusConverted.Err(metre, SystemImperial))
	require.NoError(t, StatusIdentity.Err(metre, SystemMetric))
	require.ErrorIs(t, StatusUnrecognizedUnit.Err(raw, SystemMetric), ErrUnknownUnit)

	pairErr := StatusNoConversionPath.Err(metre, SystemLiters)
	require.ErrorIs(t, pairErr, ErrUnrecognizedConversionPair)
	assert.Equal(t, `no length conversion from "metric/m" to "liters"`, pairErr.Error())

	require.Error(t, Status(0).Err(metre, SystemMetric))
}
