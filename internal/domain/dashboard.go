package domain

import (
	"fmt"
	"time"
)

// DashboardConfig é o agregado serializável {métricas, layout}. É exatamente
// esta forma que é persistida (como documento JSON) tanto no dashboard quanto
// no template — sem envelope ou versionamento adicional.
type DashboardConfig struct {
	Metrics []*MetricDefinition `json:"metrics"`
	Layout  []*LayoutRow        `json:"layout"`
}

// Clone devolve uma cópia profunda e independente da configuração.
// Mutar o clone nunca afeta a configuração original.
func (c *DashboardConfig) Clone() *DashboardConfig {
	clone := &DashboardConfig{
		Metrics: make([]*MetricDefinition, 0, len(c.Metrics)),
		Layout:  make([]*LayoutRow, 0, len(c.Layout)),
	}

	for _, def := range c.Metrics {
		clone.Metrics = append(clone.Metrics, def.Clone())
	}

	for _, row := range c.Layout {
		clone.Layout = append(clone.Layout, row.Clone())
	}

	return clone
}

// ReferencedFields coleta o conjunto de campos de atividade referenciados
// por todas as definições da configuração, sem repetição, na ordem da
// primeira ocorrência.
func (c *DashboardConfig) ReferencedFields() []ActivityField {
	seen := make(map[ActivityField]bool)
	fields := make([]ActivityField, 0)

	for _, def := range c.Metrics {
		for _, field := range def.Metrics {
			if !seen[field] {
				seen[field] = true
				fields = append(fields, field)
			}
		}
	}

	return fields
}

// Validate verifica a integridade referencial entre métricas e layout:
// toda linha referencia apenas definições existentes e toda definição
// pertence a exatamente uma linha.
func (c *DashboardConfig) Validate() error {
	defsByID := make(map[string]*MetricDefinition, len(c.Metrics))
	for _, def := range c.Metrics {
		if _, exists := defsByID[def.ID]; exists {
			return fmt.Errorf("definição de métrica duplicada: %s", def.ID)
		}
		defsByID[def.ID] = def
	}

	rowsByID := make(map[string]*LayoutRow, len(c.Layout))
	owned := make(map[string]string)
	for _, row := range c.Layout {
		if _, exists := rowsByID[row.ID]; exists {
			return fmt.Errorf("linha de layout duplicada: %s", row.ID)
		}
		rowsByID[row.ID] = row

		for _, metricID := range row.Metrics {
			if _, exists := defsByID[metricID]; !exists {
				return fmt.Errorf("linha %s referencia métrica inexistente: %s", row.ID, metricID)
			}
			if ownerRow, exists := owned[metricID]; exists {
				return fmt.Errorf("métrica %s pertence a mais de uma linha: %s e %s", metricID, ownerRow, row.ID)
			}
			owned[metricID] = row.ID
		}
	}

	for _, def := range c.Metrics {
		if _, exists := rowsByID[def.RowID]; !exists {
			return fmt.Errorf("métrica %s referencia linha inexistente: %s", def.ID, def.RowID)
		}
	}

	return nil
}

// OwnerKind indica qual o tipo de proprietário do dashboard
type OwnerKind string

const (
	OwnerKindUser OwnerKind = "user"
	OwnerKindTeam OwnerKind = "team"
)

// Dashboard é um painel de métricas pertencente a um usuário OU a um time
// (exatamente um dos dois, nunca ambos).
type Dashboard struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Config      *DashboardConfig `json:"config"`
	UserID      *int             `json:"user_id,omitempty"`
	TeamID      *string          `json:"team_id,omitempty"`
	Version     int              `json:"version"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Owner devolve o tipo de proprietário do dashboard
func (d *Dashboard) Owner() OwnerKind {
	if d.TeamID != nil {
		return OwnerKindTeam
	}
	return OwnerKindUser
}

// ValidateOwnership verifica a invariante de propriedade: exatamente um
// entre user_id e team_id deve estar definido.
func (d *Dashboard) ValidateOwnership() error {
	hasUser := d.UserID != nil
	hasTeam := d.TeamID != nil && *d.TeamID != ""

	if hasUser == hasTeam {
		return fmt.Errorf("dashboard deve pertencer a exatamente um usuário ou um time")
	}

	return nil
}
