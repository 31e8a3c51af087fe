package evaluating

import (
	"strconv"
	"time"

	"github.com/salespulse/salespulse-api/internal/domain"
)

// SeriesMode define a forma da série diária produzida para gráficos
type SeriesMode string

const (
	// SeriesModeTotal produz um ponto por dia com o agregado do dia
	SeriesModeTotal SeriesMode = "total"
	// SeriesModeBreakdown produz uma série por campo selecionado
	SeriesModeBreakdown SeriesMode = "breakdown"
	// SeriesModeMembers produz uma série por membro do time
	SeriesModeMembers SeriesMode = "members"
)

// SeriesLine é uma série nomeada com um valor por dia
type SeriesLine struct {
	Label  string    `json:"label"`
	UserID int       `json:"user_id,omitempty"`
	Values []float64 `json:"values"`
}

// MetricSeries é a série diária de uma métrica: um rótulo de data por ponto
// e uma ou mais linhas alinhadas a esses rótulos.
type MetricSeries struct {
	Dates []string     `json:"dates"`
	Lines []SeriesLine `json:"lines"`
}

// dayBucket agrupa os registros de um mesmo dia preservando a ordem
// cronológica fornecida pelo chamador (os registros chegam pré-ordenados
// por data; o avaliador não reordena).
type dayBucket struct {
	date    string
	records []*domain.DailyLog
}

func groupByDay(records []*domain.DailyLog) []dayBucket {
	buckets := make([]dayBucket, 0)
	index := make(map[string]int)

	for _, record := range records {
		key := record.Date.Format(time.DateOnly)
		if i, exists := index[key]; exists {
			buckets[i].records = append(buckets[i].records, record)
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, dayBucket{date: key, records: []*domain.DailyLog{record}})
	}

	return buckets
}

// daySum soma os campos selecionados em todos os registros do dia
func daySum(bucket dayBucket, fields []domain.ActivityField) float64 {
	var total float64
	for _, record := range bucket.records {
		for _, field := range fields {
			total += float64(record.FieldValue(field))
		}
	}
	return total
}

// Evaluate calcula o valor escalar de uma definição de métrica sobre uma
// janela de registros diários ordenada por data. Função pura: janela vazia
// vale 0 para qualquer agregação (nunca NaN nem ±Inf), campo ausente em um
// registro vale 0 e divisão por zero degrada para 0.
func Evaluate(def *domain.MetricDefinition, records []*domain.DailyLog) float64 {
	if def.Type == domain.MetricTypeConversion {
		return evaluateConversion(def, records)
	}

	buckets := groupByDay(records)
	if len(buckets) == 0 {
		return 0
	}

	switch def.Aggregation {
	case domain.AggregationAverage:
		var total float64
		for _, bucket := range buckets {
			total += daySum(bucket, def.Metrics)
		}
		return total / float64(len(buckets))

	case domain.AggregationMax:
		max := daySum(buckets[0], def.Metrics)
		for _, bucket := range buckets[1:] {
			if v := daySum(bucket, def.Metrics); v > max {
				max = v
			}
		}
		return max

	case domain.AggregationMin:
		min := daySum(buckets[0], def.Metrics)
		for _, bucket := range buckets[1:] {
			if v := daySum(bucket, def.Metrics); v < min {
				min = v
			}
		}
		return min

	default: // sum
		var total float64
		for _, bucket := range buckets {
			total += daySum(bucket, def.Metrics)
		}
		return total
	}
}

func evaluateConversion(def *domain.MetricDefinition, records []*domain.DailyLog) float64 {
	if len(def.Metrics) != 2 {
		return 0
	}

	numerator := def.Metrics[0]
	denominator := def.Metrics[1]

	var totalN, totalD float64
	for _, record := range records {
		totalN += float64(record.FieldValue(numerator))
		totalD += float64(record.FieldValue(denominator))
	}

	if totalD == 0 {
		return 0
	}

	return totalN / totalD
}

// EvaluateSeries calcula a série diária de uma definição para gráficos.
// Devolve nil quando a seleção está vazia — indicador explícito de "sem
// dados" para o chamador renderizar o estado vazio, em vez de uma série
// preenchida com zeros.
func EvaluateSeries(def *domain.MetricDefinition, records []*domain.DailyLog, mode SeriesMode) *MetricSeries {
	if len(def.Metrics) == 0 {
		return nil
	}

	if def.Type == domain.MetricTypeConversion && len(def.Metrics) != 2 {
		return nil
	}

	buckets := groupByDay(records)

	series := &MetricSeries{
		Dates: make([]string, 0, len(buckets)),
		Lines: make([]SeriesLine, 0),
	}

	for _, bucket := range buckets {
		series.Dates = append(series.Dates, bucket.date)
	}

	switch mode {
	case SeriesModeBreakdown:
		for _, field := range def.Metrics {
			line := SeriesLine{
				Label:  string(field),
				Values: make([]float64, 0, len(buckets)),
			}
			for _, bucket := range buckets {
				line.Values = append(line.Values, daySum(bucket, []domain.ActivityField{field}))
			}
			series.Lines = append(series.Lines, line)
		}

	case SeriesModeMembers:
		for _, line := range memberLines(def, buckets) {
			series.Lines = append(series.Lines, line)
		}

	default: // total
		line := SeriesLine{
			Label:  string(SeriesModeTotal),
			Values: make([]float64, 0, len(buckets)),
		}
		for _, bucket := range buckets {
			line.Values = append(line.Values, dayAggregate(def, bucket))
		}
		series.Lines = append(series.Lines, line)
	}

	return series
}

// dayAggregate calcula o ponto de um único dia: soma dos campos para
// métricas totais, razão N/D do próprio dia para conversão (0 se D=0)
func dayAggregate(def *domain.MetricDefinition, bucket dayBucket) float64 {
	if def.Type == domain.MetricTypeConversion {
		n := daySum(bucket, def.Metrics[:1])
		d := daySum(bucket, def.Metrics[1:2])
		if d == 0 {
			return 0
		}
		return n / d
	}

	return daySum(bucket, def.Metrics)
}

// memberLines produz uma linha por membro, cada ponto sendo a soma dos
// campos selecionados nos registros do próprio membro naquele dia
func memberLines(def *domain.MetricDefinition, buckets []dayBucket) []SeriesLine {
	memberOrder := make([]int, 0)
	seen := make(map[int]bool)

	for _, bucket := range buckets {
		for _, record := range bucket.records {
			if !seen[record.UserID] {
				seen[record.UserID] = true
				memberOrder = append(memberOrder, record.UserID)
			}
		}
	}

	lines := make([]SeriesLine, 0, len(memberOrder))
	for _, userID := range memberOrder {
		line := SeriesLine{
			Label:  strconv.Itoa(userID),
			UserID: userID,
			Values: make([]float64, 0, len(buckets)),
		}

		for _, bucket := range buckets {
			var total float64
			for _, record := range bucket.records {
				if record.UserID != userID {
					continue
				}
				for _, field := range def.Metrics {
					total += float64(record.FieldValue(field))
				}
			}
			line.Values = append(line.Values, total)
		}

		lines = append(lines, line)
	}

	return lines
}
