package domain

import "time"

// TemplateVisibility define quem pode ver e clonar um template
type TemplateVisibility string

const (
	TemplateVisibilityPrivate TemplateVisibility = "private"
	TemplateVisibilityPublic  TemplateVisibility = "public"
)

// TemplateCategories é a lista fixa de categorias sugeridas. A categoria do
// template continua sendo texto livre.
var TemplateCategories = []string{
	"sales",
	"prospecting",
	"management",
	"personal",
}

// Template é um retrato nomeado e compartilhável de uma configuração de
// dashboard. Nunca carrega dados de atividade — apenas a forma {métricas,
// layout}.
type Template struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Config         *DashboardConfig   `json:"config"`
	Category       string             `json:"category,omitempty"`
	Visibility     TemplateVisibility `json:"visibility"`
	OwnerID        int                `json:"owner_id"`
	DownloadsCount int                `json:"downloads_count"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// CompatibilityResult é o resultado estruturado da verificação de
// compatibilidade de um template com um conjunto de campos disponíveis.
// Nunca é um erro: incompatibilidade é reportada com os campos faltantes.
type CompatibilityResult struct {
	Compatible    bool            `json:"compatible"`
	MissingFields []ActivityField `json:"missing_fields"`
}

// CheckCompatibility determina se o template pode ser clonado fielmente em
// um contexto cujos campos disponíveis podem ser um subconjunto dos campos
// que as métricas do template referenciam. Cada campo faltante aparece uma
// única vez, independente de quantas definições o referenciam. Template
// vazio é trivialmente compatível.
func (t *Template) CheckCompatibility(availableFields []ActivityField) CompatibilityResult {
	available := make(map[ActivityField]bool, len(availableFields))
	for _, field := range availableFields {
		available[field] = true
	}

	missing := make([]ActivityField, 0)
	if t.Config != nil {
		for _, field := range t.Config.ReferencedFields() {
			if !available[field] {
				missing = append(missing, field)
			}
		}
	}

	return CompatibilityResult{
		Compatible:    len(missing) == 0,
		MissingFields: missing,
	}
}
