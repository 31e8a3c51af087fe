package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyLogFieldValue(t *testing.T) {
	log := &DailyLog{
		Counters:  map[ActivityField]int64{FieldColdCalls: 12},
		DealsWon:  2,
		DealValue: 150000,
	}

	assert.Equal(t, int64(12), log.FieldValue(FieldColdCalls))
	assert.Equal(t, int64(0), log.FieldValue(FieldQuotes))
	assert.Equal(t, int64(2), log.FieldValue(FieldDealsWon))
	assert.Equal(t, int64(150000), log.FieldValue(FieldDealValue))

	// Registro antigo sem mapa de contadores
	empty := &DailyLog{}
	assert.Equal(t, int64(0), empty.FieldValue(FieldColdCalls))
}

func TestDailyLogSetFieldValue(t *testing.T) {
	log := &DailyLog{}

	log.SetFieldValue(FieldColdEmails, 8)
	log.SetFieldValue(FieldDealsWon, 1)
	log.SetFieldValue(FieldDealValue, 99000)

	assert.Equal(t, int64(8), log.Counters[FieldColdEmails])
	assert.Equal(t, int64(1), log.DealsWon)
	assert.Equal(t, int64(99000), log.DealValue)
}

func TestDailyLogMerge(t *testing.T) {
	log := &DailyLog{
		Counters: map[ActivityField]int64{
			FieldColdCalls:  10,
			FieldColdEmails: 5,
		},
	}

	log.Merge(map[ActivityField]int64{
		FieldColdCalls: 20,
		FieldQuotes:    3,
	})

	// Campos não informados mantêm o valor anterior
	assert.Equal(t, int64(20), log.FieldValue(FieldColdCalls))
	assert.Equal(t, int64(5), log.FieldValue(FieldColdEmails))
	assert.Equal(t, int64(3), log.FieldValue(FieldQuotes))
}

func TestDailyLogNormalizeDeals(t *testing.T) {
	tests := []struct {
		name      string
		dealsWon  int64
		dealValue int64
		expected  [2]int64
	}{
		{
			name:      "Ambos preenchidos permanecem",
			dealsWon:  2,
			dealValue: 150000,
			expected:  [2]int64{2, 150000},
		},
		{
			name:      "Valor zerado zera a quantidade",
			dealsWon:  2,
			dealValue: 0,
			expected:  [2]int64{0, 0},
		},
		{
			name:      "Quantidade zerada zera o valor",
			dealsWon:  0,
			dealValue: 150000,
			expected:  [2]int64{0, 0},
		},
		{
			name:      "Ambos zerados permanecem zerados",
			dealsWon:  0,
			dealValue: 0,
			expected:  [2]int64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &DailyLog{DealsWon: tt.dealsWon, DealValue: tt.dealValue}
			log.NormalizeDeals()

			assert.Equal(t, tt.expected[0], log.DealsWon)
			assert.Equal(t, tt.expected[1], log.DealValue)
		})
	}
}

func TestDailyLogValidate(t *testing.T) {
	valid := &DailyLog{
		Counters: map[ActivityField]int64{FieldColdCalls: 10},
		DealsWon: 1,
	}
	assert.NoError(t, valid.Validate())

	negative := &DailyLog{
		Counters: map[ActivityField]int64{FieldColdCalls: -1},
	}
	assert.Error(t, negative.Validate())

	unknown := &DailyLog{
		Counters: map[ActivityField]int64{ActivityField("inventado"): 1},
	}
	assert.Error(t, unknown.Validate())

	negativeDeals := &DailyLog{DealsWon: -1}
	assert.Error(t, negativeDeals.Validate())

	negativeValue := &DailyLog{DealValue: -100}
	assert.Error(t, negativeValue.Validate())
}
