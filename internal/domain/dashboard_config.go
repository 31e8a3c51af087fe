package domain

// ConfigFromParts monta a configuração persistível a partir do estado de
// edição (lista de definições + lista de linhas). Determinística, pura e
// preservadora de ordem; não valida nada — validação é responsabilidade
// de quem persiste.
func ConfigFromParts(definitions []*MetricDefinition, rows []*LayoutRow) *DashboardConfig {
	config := &DashboardConfig{
		Metrics: make([]*MetricDefinition, 0, len(definitions)),
		Layout:  make([]*LayoutRow, 0, len(rows)),
	}

	for _, def := range definitions {
		config.Metrics = append(config.Metrics, def.Clone())
	}

	for _, row := range rows {
		config.Layout = append(config.Layout, row.Clone())
	}

	return config
}

// ConfigParts é o inverso de ConfigFromParts: reidrata o estado de edição a
// partir de uma configuração carregada do banco.
//
// Política para entrada malformada (aplicada uniformemente, nunca quebra o
// chamador): referências pendentes são descartadas mantendo o restante
// carregável. Um ID de métrica em uma linha sem definição correspondente é
// removido da linha; uma definição cujo rowId não corresponde a nenhuma
// linha é reanexada à linha reservada "default" (nunca perdida). A linha
// "default" sempre existe no resultado.
func ConfigParts(config *DashboardConfig) ([]*MetricDefinition, []*LayoutRow) {
	if config == nil {
		return []*MetricDefinition{}, []*LayoutRow{NewDefaultRow()}
	}

	defsByID := make(map[string]bool, len(config.Metrics))
	definitions := make([]*MetricDefinition, 0, len(config.Metrics))
	for _, def := range config.Metrics {
		definitions = append(definitions, def.Clone())
		defsByID[def.ID] = true
	}

	rowsByID := make(map[string]*LayoutRow, len(config.Layout))
	rows := make([]*LayoutRow, 0, len(config.Layout))
	for _, row := range config.Layout {
		clone := row.Clone()

		// Descartar IDs de métricas que não existem mais na configuração
		kept := clone.Metrics[:0]
		for _, metricID := range clone.Metrics {
			if defsByID[metricID] {
				kept = append(kept, metricID)
			}
		}
		clone.Metrics = kept

		rows = append(rows, clone)
		rowsByID[clone.ID] = clone
	}

	defaultRow, hasDefault := rowsByID[DefaultRowID]
	if !hasDefault {
		defaultRow = NewDefaultRow()
		rows = append(rows, defaultRow)
		rowsByID[DefaultRowID] = defaultRow
	}

	// Reanexar definições órfãs à linha reservada
	for _, def := range definitions {
		row, exists := rowsByID[def.RowID]
		if !exists {
			def.RowID = DefaultRowID
			defaultRow.Metrics = append(defaultRow.Metrics, def.ID)
			continue
		}

		if !containsID(row.Metrics, def.ID) {
			row.Metrics = append(row.Metrics, def.ID)
		}
	}

	return definitions, rows
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
