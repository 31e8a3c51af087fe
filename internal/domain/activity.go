package domain

import (
	"fmt"
	"time"
)

// ActivityField identifica um contador de atividade do registro diário
type ActivityField string

const (
	FieldColdCalls              ActivityField = "cold_calls"
	FieldTextMessages           ActivityField = "text_messages"
	FieldFacebookDMs            ActivityField = "facebook_dms"
	FieldLinkedinDMs            ActivityField = "linkedin_dms"
	FieldInstagramDMs           ActivityField = "instagram_dms"
	FieldColdEmails             ActivityField = "cold_emails"
	FieldQuotes                 ActivityField = "quotes"
	FieldBookedCalls            ActivityField = "booked_calls"
	FieldCompletedCalls         ActivityField = "completed_calls"
	FieldBookedPresentations    ActivityField = "booked_presentations"
	FieldCompletedPresentations ActivityField = "completed_presentations"
	FieldSubmittedApplications  ActivityField = "submitted_applications"
	FieldDealsWon               ActivityField = "deals_won"
	FieldDealValue              ActivityField = "deal_value"
)

// ActivityFields lista todos os campos válidos, na ordem de exibição
var ActivityFields = []ActivityField{
	FieldColdCalls,
	FieldTextMessages,
	FieldFacebookDMs,
	FieldLinkedinDMs,
	FieldInstagramDMs,
	FieldColdEmails,
	FieldQuotes,
	FieldBookedCalls,
	FieldCompletedCalls,
	FieldBookedPresentations,
	FieldCompletedPresentations,
	FieldSubmittedApplications,
	FieldDealsWon,
	FieldDealValue,
}

var validActivityFields = func() map[ActivityField]bool {
	m := make(map[ActivityField]bool, len(ActivityFields))
	for _, f := range ActivityFields {
		m[f] = true
	}
	return m
}()

// IsValidActivityField verifica se o nome pertence ao conjunto fixo de campos
func IsValidActivityField(field ActivityField) bool {
	return validActivityFields[field]
}

// DailyLog é o registro de atividades de um usuário em um dia para um time.
// Identidade: (UserID, TeamID, Date) — um registro por usuário por dia por time.
type DailyLog struct {
	ID        string                  `json:"id"`
	UserID    int                     `json:"user_id"`
	TeamID    string                  `json:"team_id"`
	Date      time.Time               `json:"date"`
	Counters  map[ActivityField]int64 `json:"counters"`
	DealsWon  int64                   `json:"deals_won"`
	DealValue int64                   `json:"deal_value"` // em centavos
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// FieldValue retorna o valor de um campo do registro. Campos ausentes
// (logs antigos podem não ter campos adicionados depois) valem 0.
func (l *DailyLog) FieldValue(field ActivityField) int64 {
	switch field {
	case FieldDealsWon:
		return l.DealsWon
	case FieldDealValue:
		return l.DealValue
	}

	if l.Counters == nil {
		return 0
	}

	return l.Counters[field]
}

// SetFieldValue ajusta o valor de um campo do registro
func (l *DailyLog) SetFieldValue(field ActivityField, value int64) {
	switch field {
	case FieldDealsWon:
		l.DealsWon = value
		return
	case FieldDealValue:
		l.DealValue = value
		return
	}

	if l.Counters == nil {
		l.Counters = make(map[ActivityField]int64)
	}

	l.Counters[field] = value
}

// NormalizeDeals aplica a regra de negócio entre deals_won e deal_value:
// zerar um dos dois zera o outro. Aplicada uma única vez, na fronteira de
// escrita do registro diário.
func (l *DailyLog) NormalizeDeals() {
	if l.DealsWon == 0 || l.DealValue == 0 {
		l.DealsWon = 0
		l.DealValue = 0
	}
}

// Validate verifica as invariantes do registro: todos os contadores >= 0
func (l *DailyLog) Validate() error {
	for field, value := range l.Counters {
		if !IsValidActivityField(field) {
			return fmt.Errorf("campo de atividade desconhecido: %s", field)
		}
		if value < 0 {
			return fmt.Errorf("contador negativo para o campo %s: %d", field, value)
		}
	}

	if l.DealsWon < 0 {
		return fmt.Errorf("deals_won negativo: %d", l.DealsWon)
	}

	if l.DealValue < 0 {
		return fmt.Errorf("deal_value negativo: %d", l.DealValue)
	}

	return nil
}

// Merge aplica os campos informados em update sobre o registro atual.
// Campos não informados mantêm o valor anterior (merge-on-write).
func (l *DailyLog) Merge(update map[ActivityField]int64) {
	for field, value := range update {
		l.SetFieldValue(field, value)
	}
}
