package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompetency(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Competency
		hasError bool
	}{
		{name: "formato mm-yyyy", input: "03-2025", expected: Competency{Year: 2025, Month: time.March}},
		{name: "formato yyyy-mm", input: "2025-03", expected: Competency{Year: 2025, Month: time.March}},
		{name: "mês sem zero à esquerda", input: "3-2025", expected: Competency{Year: 2025, Month: time.March}},
		{name: "mês inválido", input: "13-2025", hasError: true},
		{name: "texto arbitrário", input: "marco-2025", hasError: true},
		{name: "sem separador", input: "032025", hasError: true},
		{name: "vazio", input: "", hasError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			comp, err := ParseCompetency(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, comp)
		})
	}
}

func TestCompetency_String(t *testing.T) {
	comp := Competency{Year: 2025, Month: time.March}
	assert.Equal(t, "03-2025", comp.String())
}

func TestCompetency_ContainsComparaEmUTC(t *testing.T) {
	comp := Competency{Year: 2025, Month: time.March}

	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)

	// 31/03 23:00 em São Paulo já é 01/04 02:00 UTC: fora da competência.
	assert.False(t, comp.Contains(time.Date(2025, 3, 31, 23, 0, 0, 0, saoPaulo)))
	// 01/03 00:00 em São Paulo ainda é 01/03 03:00 UTC: dentro.
	assert.True(t, comp.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, saoPaulo)))
}

func TestCompetency_DaysPassed(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		comp     Competency
		expected int
	}{
		{name: "competência corrente usa o dia de hoje", comp: Competency{Year: 2025, Month: time.March}, expected: 10},
		{name: "competência passada usa o mês inteiro", comp: Competency{Year: 2025, Month: time.February}, expected: 28},
		{name: "competência futura ainda não transcorreu", comp: Competency{Year: 2025, Month: time.April}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.comp.DaysPassed(now))
		})
	}
}

func TestCompetency_DaysInMonth(t *testing.T) {
	assert.Equal(t, 31, Competency{Year: 2025, Month: time.March}.DaysInMonth())
	assert.Equal(t, 28, Competency{Year: 2025, Month: time.February}.DaysInMonth())
	assert.Equal(t, 29, Competency{Year: 2024, Month: time.February}.DaysInMonth())
}

func TestParseView(t *testing.T) {
	view, ok := ParseView("")
	assert.True(t, ok)
	assert.Equal(t, ViewCashFlow, view)

	view, ok = ParseView("invoice-items")
	assert.True(t, ok)
	assert.Equal(t, ViewInvoiceItems, view)

	_, ok = ParseView("extrato")
	assert.False(t, ok)
}
