package domain

import "fmt"

// MetricType define o tipo de cálculo de uma métrica
type MetricType string

const (
	MetricTypeTotal      MetricType = "total"
	MetricTypeConversion MetricType = "conversion"
)

// Aggregation define como os totais diários são agregados no período.
// Significativa apenas para métricas do tipo total; para conversão o
// avaliador sempre usa a regra de razão e ignora este campo.
type Aggregation string

const (
	AggregationSum     Aggregation = "sum"
	AggregationAverage Aggregation = "average"
	AggregationMax     Aggregation = "max"
	AggregationMin     Aggregation = "min"
)

// DisplayType define como o valor da métrica é formatado na exibição
type DisplayType string

const (
	DisplayTypeNumber  DisplayType = "number"
	DisplayTypeDollar  DisplayType = "dollar"
	DisplayTypePercent DisplayType = "percent"
)

// DisplayMode define a forma de exibição da métrica no dashboard
type DisplayMode string

const (
	DisplayModeNumber      DisplayMode = "number"
	DisplayModeChartTotal  DisplayMode = "chart_total"
	DisplayModeChartTeam   DisplayMode = "chart_team"
	DisplayModeChartMetric DisplayMode = "chart_metric"
)

// MetricDefinition é uma computação nomeada sobre campos de atividade.
// Para type=total, Metrics tem ao menos um campo; para type=conversion,
// exatamente dois, interpretados como [numerador, denominador].
type MetricDefinition struct {
	ID          string          `json:"id"`
	Type        MetricType      `json:"type"`
	Metrics     []ActivityField `json:"metrics"`
	DisplayType DisplayType     `json:"displayType"`
	Aggregation Aggregation     `json:"aggregation,omitempty"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	DisplayMode DisplayMode     `json:"displayMode"`
	Order       int             `json:"order"`
	RowID       string          `json:"rowId"`
}

// Validate verifica a forma da definição. Rejeitamos definições inválidas
// na criação; o avaliador assume definições já validadas.
func (d *MetricDefinition) Validate() error {
	switch d.Type {
	case MetricTypeTotal:
		if len(d.Metrics) < 1 {
			return fmt.Errorf("métrica total exige ao menos um campo")
		}
		switch d.Aggregation {
		case AggregationSum, AggregationAverage, AggregationMax, AggregationMin:
		default:
			return fmt.Errorf("agregação inválida para métrica total: %q", d.Aggregation)
		}
	case MetricTypeConversion:
		if len(d.Metrics) != 2 {
			return fmt.Errorf("métrica de conversão exige exatamente dois campos, recebeu %d", len(d.Metrics))
		}
	default:
		return fmt.Errorf("tipo de métrica inválido: %q", d.Type)
	}

	switch d.DisplayType {
	case DisplayTypeNumber, DisplayTypeDollar, DisplayTypePercent:
	default:
		return fmt.Errorf("tipo de exibição inválido: %q", d.DisplayType)
	}

	for _, field := range d.Metrics {
		if !IsValidActivityField(field) {
			return fmt.Errorf("campo de atividade desconhecido na métrica: %s", field)
		}
	}

	return nil
}

// Clone devolve uma cópia profunda e independente da definição
func (d *MetricDefinition) Clone() *MetricDefinition {
	clone := *d
	clone.Metrics = make([]ActivityField, len(d.Metrics))
	copy(clone.Metrics, d.Metrics)
	return &clone
}
