package domain

// DefaultRowID identifica a linha reservada do layout. Ela sempre existe
// e não pode ser removida.
const DefaultRowID = "default"

// LayoutRow agrupa definições de métrica para apresentação. Cada definição
// pertence a exatamente uma linha; a ordem dos IDs em Metrics é a ordem de
// exibição dentro da linha.
type LayoutRow struct {
	ID      string   `json:"id"`
	Metrics []string `json:"metrics"`
	Order   int      `json:"order"`
	Height  *int     `json:"height,omitempty"`
}

// Clone devolve uma cópia profunda e independente da linha
func (r *LayoutRow) Clone() *LayoutRow {
	clone := *r
	clone.Metrics = make([]string, len(r.Metrics))
	copy(clone.Metrics, r.Metrics)
	if r.Height != nil {
		h := *r.Height
		clone.Height = &h
	}
	return &clone
}

// NewDefaultRow cria a linha reservada vazia
func NewDefaultRow() *LayoutRow {
	return &LayoutRow{
		ID:      DefaultRowID,
		Metrics: []string{},
		Order:   0,
	}
}
