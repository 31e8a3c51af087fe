package evaluating

import (
	"testing"
	"time"

	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func logFor(userID int, date string, fields map[domain.ActivityField]int64) *domain.DailyLog {
	log := &domain.DailyLog{
		UserID: userID,
		TeamID: "TEAM01",
		Date:   day(date),
	}
	for field, value := range fields {
		log.SetFieldValue(field, value)
	}
	return log
}

func TestEvaluate_Total(t *testing.T) {
	records := []*domain.DailyLog{
		logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10, domain.FieldColdEmails: 5}),
		logFor(2, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 4}),
		logFor(1, "2024-03-02", map[domain.ActivityField]int64{domain.FieldColdCalls: 6}),
		logFor(1, "2024-03-03", map[domain.ActivityField]int64{domain.FieldColdEmails: 2}),
	}

	tests := []struct {
		name     string
		def      *domain.MetricDefinition
		records  []*domain.DailyLog
		expected float64
	}{
		{
			name: "Soma de um campo em todos os dias",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls},
				Aggregation: domain.AggregationSum,
			},
			records:  records,
			expected: 20, // 10+4 no dia 1, 6 no dia 2, 0 no dia 3
		},
		{
			name: "Soma de múltiplos campos combinados",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls, domain.FieldColdEmails},
				Aggregation: domain.AggregationSum,
			},
			records:  records,
			expected: 27,
		},
		{
			name: "Média por dia considera registros de vários usuários no mesmo dia",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls},
				Aggregation: domain.AggregationAverage,
			},
			records:  records,
			expected: 20.0 / 3.0, // três dias: 14, 6, 0
		},
		{
			name: "Máximo por dia",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls},
				Aggregation: domain.AggregationMax,
			},
			records:  records,
			expected: 14,
		},
		{
			name: "Mínimo por dia",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls},
				Aggregation: domain.AggregationMin,
			},
			records:  records,
			expected: 0, // dia 3 não tem cold_calls
		},
		{
			name: "Janela vazia vale 0 para qualquer agregação",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldColdCalls},
				Aggregation: domain.AggregationAverage,
			},
			records:  nil,
			expected: 0,
		},
		{
			name: "Campo ausente nos registros vale 0",
			def: &domain.MetricDefinition{
				Type:        domain.MetricTypeTotal,
				Metrics:     []domain.ActivityField{domain.FieldQuotes},
				Aggregation: domain.AggregationSum,
			},
			records:  records,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.def, tt.records)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestEvaluate_Conversion(t *testing.T) {
	tests := []struct {
		name     string
		def      *domain.MetricDefinition
		records  []*domain.DailyLog
		expected float64
	}{
		{
			name: "Razão entre somas da janela inteira",
			def: &domain.MetricDefinition{
				Type:    domain.MetricTypeConversion,
				Metrics: []domain.ActivityField{domain.FieldBookedCalls, domain.FieldColdCalls},
			},
			records: []*domain.DailyLog{
				logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldBookedCalls: 3, domain.FieldColdCalls: 10}),
				logFor(1, "2024-03-02", map[domain.ActivityField]int64{domain.FieldBookedCalls: 2, domain.FieldColdCalls: 10}),
			},
			expected: 0.25,
		},
		{
			name: "Denominador zero degrada para 0 em vez de NaN",
			def: &domain.MetricDefinition{
				Type:    domain.MetricTypeConversion,
				Metrics: []domain.ActivityField{domain.FieldBookedCalls, domain.FieldColdCalls},
			},
			records: []*domain.DailyLog{
				logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldBookedCalls: 3}),
			},
			expected: 0,
		},
		{
			name: "Janela vazia vale 0",
			def: &domain.MetricDefinition{
				Type:    domain.MetricTypeConversion,
				Metrics: []domain.ActivityField{domain.FieldBookedCalls, domain.FieldColdCalls},
			},
			records:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.def, tt.records)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestEvaluateSeries_Total(t *testing.T) {
	def := &domain.MetricDefinition{
		Type:        domain.MetricTypeTotal,
		Metrics:     []domain.ActivityField{domain.FieldColdCalls},
		Aggregation: domain.AggregationSum,
	}

	records := []*domain.DailyLog{
		logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10}),
		logFor(2, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 4}),
		logFor(1, "2024-03-02", map[domain.ActivityField]int64{domain.FieldColdCalls: 6}),
	}

	series := EvaluateSeries(def, records, SeriesModeTotal)

	assert.NotNil(t, series)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, series.Dates)
	assert.Len(t, series.Lines, 1)
	assert.Equal(t, []float64{14, 6}, series.Lines[0].Values)
}

func TestEvaluateSeries_ConversionPerDay(t *testing.T) {
	def := &domain.MetricDefinition{
		Type:    domain.MetricTypeConversion,
		Metrics: []domain.ActivityField{domain.FieldBookedCalls, domain.FieldColdCalls},
	}

	records := []*domain.DailyLog{
		logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldBookedCalls: 5, domain.FieldColdCalls: 10}),
		logFor(1, "2024-03-02", map[domain.ActivityField]int64{domain.FieldBookedCalls: 3}),
	}

	series := EvaluateSeries(def, records, SeriesModeTotal)

	assert.NotNil(t, series)
	// Dia com denominador zero vale 0 no ponto, sem contaminar os demais
	assert.Equal(t, []float64{0.5, 0}, series.Lines[0].Values)
}

func TestEvaluateSeries_Breakdown(t *testing.T) {
	def := &domain.MetricDefinition{
		Type:        domain.MetricTypeTotal,
		Metrics:     []domain.ActivityField{domain.FieldColdCalls, domain.FieldColdEmails},
		Aggregation: domain.AggregationSum,
	}

	records := []*domain.DailyLog{
		logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10, domain.FieldColdEmails: 2}),
		logFor(1, "2024-03-02", map[domain.ActivityField]int64{domain.FieldColdEmails: 7}),
	}

	series := EvaluateSeries(def, records, SeriesModeBreakdown)

	assert.NotNil(t, series)
	assert.Len(t, series.Lines, 2)
	assert.Equal(t, "cold_calls", series.Lines[0].Label)
	assert.Equal(t, []float64{10, 0}, series.Lines[0].Values)
	assert.Equal(t, "cold_emails", series.Lines[1].Label)
	assert.Equal(t, []float64{2, 7}, series.Lines[1].Values)
}

func TestEvaluateSeries_Members(t *testing.T) {
	def := &domain.MetricDefinition{
		Type:        domain.MetricTypeTotal,
		Metrics:     []domain.ActivityField{domain.FieldColdCalls},
		Aggregation: domain.AggregationSum,
	}

	records := []*domain.DailyLog{
		logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10}),
		logFor(9, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 4}),
		logFor(9, "2024-03-02", map[domain.ActivityField]int64{domain.FieldColdCalls: 1}),
	}

	series := EvaluateSeries(def, records, SeriesModeMembers)

	assert.NotNil(t, series)
	assert.Len(t, series.Lines, 2)

	assert.Equal(t, 7, series.Lines[0].UserID)
	assert.Equal(t, []float64{10, 0}, series.Lines[0].Values)
	assert.Equal(t, 9, series.Lines[1].UserID)
	assert.Equal(t, []float64{4, 1}, series.Lines[1].Values)
}

func TestEvaluateSeries_EmptySelection(t *testing.T) {
	records := []*domain.DailyLog{
		logFor(1, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10}),
	}

	// Seleção vazia devolve nil: indicador de "sem dados", não série de zeros
	empty := &domain.MetricDefinition{
		Type:        domain.MetricTypeTotal,
		Metrics:     []domain.ActivityField{},
		Aggregation: domain.AggregationSum,
	}
	assert.Nil(t, EvaluateSeries(empty, records, SeriesModeTotal))

	// Conversão sem exatamente dois campos também
	malformed := &domain.MetricDefinition{
		Type:    domain.MetricTypeConversion,
		Metrics: []domain.ActivityField{domain.FieldBookedCalls},
	}
	assert.Nil(t, EvaluateSeries(malformed, records, SeriesModeTotal))
}

func TestEvaluateSeries_EmptyWindow(t *testing.T) {
	def := &domain.MetricDefinition{
		Type:        domain.MetricTypeTotal,
		Metrics:     []domain.ActivityField{domain.FieldColdCalls},
		Aggregation: domain.AggregationSum,
	}

	series := EvaluateSeries(def, nil, SeriesModeTotal)

	// Janela sem registros produz série vazia, não nil: a seleção é válida
	assert.NotNil(t, series)
	assert.Empty(t, series.Dates)
	assert.Len(t, series.Lines, 1)
	assert.Empty(t, series.Lines[0].Values)
}
