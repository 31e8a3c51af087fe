package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func totalDef(id, rowID string, fields ...ActivityField) *MetricDefinition {
	return &MetricDefinition{
		ID:          id,
		Type:        MetricTypeTotal,
		Metrics:     fields,
		DisplayType: DisplayTypeNumber,
		Aggregation: AggregationSum,
		DisplayMode: DisplayModeNumber,
		RowID:       rowID,
	}
}

func TestConfigRoundTrip(t *testing.T) {
	definitions := []*MetricDefinition{
		totalDef("m2", "row-b", FieldColdEmails),
		totalDef("m1", "row-a", FieldColdCalls),
		totalDef("m3", "row-a", FieldQuotes),
	}
	rows := []*LayoutRow{
		{ID: "row-b", Metrics: []string{"m2"}, Order: 1},
		{ID: "row-a", Metrics: []string{"m1", "m3"}, Order: 0},
		{ID: DefaultRowID, Metrics: []string{}, Order: 2},
	}

	config := ConfigFromParts(definitions, rows)
	gotDefs, gotRows := ConfigParts(config)

	// A ida e volta preserva conteúdo E ordem: nada é reordenado
	assert.Equal(t, definitions, gotDefs)
	assert.Equal(t, rows, gotRows)
}

func TestConfigFromParts_DeepCopies(t *testing.T) {
	def := totalDef("m1", "row-a", FieldColdCalls)
	row := &LayoutRow{ID: "row-a", Metrics: []string{"m1"}, Order: 0}

	config := ConfigFromParts([]*MetricDefinition{def}, []*LayoutRow{row})

	def.Metrics[0] = FieldQuotes
	row.Metrics[0] = "outro"

	assert.Equal(t, FieldColdCalls, config.Metrics[0].Metrics[0])
	assert.Equal(t, "m1", config.Layout[0].Metrics[0])
}

func TestConfigParts_NilConfig(t *testing.T) {
	defs, rows := ConfigParts(nil)

	assert.Empty(t, defs)
	assert.Len(t, rows, 1)
	assert.Equal(t, DefaultRowID, rows[0].ID)
}

func TestConfigParts_DropsDanglingMetricIDs(t *testing.T) {
	config := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "row-a", FieldColdCalls)},
		Layout: []*LayoutRow{
			{ID: "row-a", Metrics: []string{"m1", "fantasma"}, Order: 0},
			{ID: DefaultRowID, Metrics: []string{}, Order: 1},
		},
	}

	_, rows := ConfigParts(config)

	assert.Equal(t, []string{"m1"}, rows[0].Metrics)
}

func TestConfigParts_ReattachesOrphanDefinitions(t *testing.T) {
	config := &DashboardConfig{
		Metrics: []*MetricDefinition{
			totalDef("m1", "row-a", FieldColdCalls),
			totalDef("orfa", "linha-removida", FieldQuotes),
		},
		Layout: []*LayoutRow{
			{ID: "row-a", Metrics: []string{"m1"}, Order: 0},
			{ID: DefaultRowID, Metrics: []string{}, Order: 1},
		},
	}

	defs, rows := ConfigParts(config)

	// A definição órfã é reanexada à linha reservada, nunca perdida
	assert.Equal(t, DefaultRowID, defs[1].RowID)
	assert.Equal(t, []string{"orfa"}, rows[1].Metrics)
}

func TestConfigParts_CreatesMissingDefaultRow(t *testing.T) {
	config := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("orfa", "nenhuma", FieldColdCalls)},
		Layout:  []*LayoutRow{},
	}

	defs, rows := ConfigParts(config)

	assert.Len(t, rows, 1)
	assert.Equal(t, DefaultRowID, rows[0].ID)
	assert.Equal(t, []string{"orfa"}, rows[0].Metrics)
	assert.Equal(t, DefaultRowID, defs[0].RowID)
}

func TestConfigParts_ReturnsIndependentCopies(t *testing.T) {
	config := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "row-a", FieldColdCalls)},
		Layout: []*LayoutRow{
			{ID: "row-a", Metrics: []string{"m1"}, Order: 0},
			{ID: DefaultRowID, Metrics: []string{}, Order: 1},
		},
	}

	defs, rows := ConfigParts(config)
	defs[0].Metrics[0] = FieldQuotes
	rows[0].Metrics[0] = "mutado"

	assert.Equal(t, FieldColdCalls, config.Metrics[0].Metrics[0])
	assert.Equal(t, "m1", config.Layout[0].Metrics[0])
}

func TestDashboardConfigValidate(t *testing.T) {
	valid := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "row-a", FieldColdCalls)},
		Layout:  []*LayoutRow{{ID: "row-a", Metrics: []string{"m1"}, Order: 0}},
	}
	assert.NoError(t, valid.Validate())

	duplicated := &DashboardConfig{
		Metrics: []*MetricDefinition{
			totalDef("m1", "row-a", FieldColdCalls),
			totalDef("m1", "row-a", FieldQuotes),
		},
		Layout: []*LayoutRow{{ID: "row-a", Metrics: []string{"m1"}, Order: 0}},
	}
	assert.Error(t, duplicated.Validate())

	danglingRow := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "nenhuma", FieldColdCalls)},
		Layout:  []*LayoutRow{{ID: "row-a", Metrics: []string{"m1"}, Order: 0}},
	}
	assert.Error(t, danglingRow.Validate())

	danglingMetric := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "row-a", FieldColdCalls)},
		Layout:  []*LayoutRow{{ID: "row-a", Metrics: []string{"m1", "fantasma"}, Order: 0}},
	}
	assert.Error(t, danglingMetric.Validate())

	twoOwners := &DashboardConfig{
		Metrics: []*MetricDefinition{totalDef("m1", "row-a", FieldColdCalls)},
		Layout: []*LayoutRow{
			{ID: "row-a", Metrics: []string{"m1"}, Order: 0},
			{ID: "row-b", Metrics: []string{"m1"}, Order: 1},
		},
	}
	assert.Error(t, twoOwners.Validate())
}

func TestDashboardOwnership(t *testing.T) {
	userID := 7
	teamID := "TEAM01"

	userBoard := &Dashboard{ID: "d1", Title: "Meu painel", UserID: &userID}
	assert.NoError(t, userBoard.ValidateOwnership())
	assert.Equal(t, OwnerKindUser, userBoard.Owner())

	teamBoard := &Dashboard{ID: "d2", Title: "Painel do time", TeamID: &teamID}
	assert.NoError(t, teamBoard.ValidateOwnership())
	assert.Equal(t, OwnerKindTeam, teamBoard.Owner())

	both := &Dashboard{ID: "d3", UserID: &userID, TeamID: &teamID}
	assert.Error(t, both.ValidateOwnership())

	neither := &Dashboard{ID: "d4"}
	assert.Error(t, neither.ValidateOwnership())
}
