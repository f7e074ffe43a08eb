package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Competency representa a competência (ano-mês) usada para delimitar os
// relatórios financeiros. Todas as comparações de período são feitas em UTC.
type Competency struct {
	Year  int
	Month time.Month
}

// ParseCompetency aceita os formatos mm-yyyy (padrão dos relatórios) e yyyy-mm.
func ParseCompetency(s string) (Competency, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Competency{}, fmt.Errorf("competência inválida: %q", s)
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return Competency{}, fmt.Errorf("competência inválida: %q", s)
	}

	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return Competency{}, fmt.Errorf("competência inválida: %q", s)
	}

	year, month := first, second
	if len(parts[0]) <= 2 {
		// Formato mm-yyyy
		year, month = second, first
	}

	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return Competency{}, fmt.Errorf("competência fora do intervalo válido: %q", s)
	}

	return Competency{Year: year, Month: time.Month(month)}, nil
}

// CurrentCompetency retorna a competência do mês corrente.
func CurrentCompetency() Competency {
	return CompetencyOf(time.Now())
}

// CompetencyOf retorna a competência do instante informado, em UTC.
func CompetencyOf(t time.Time) Competency {
	u := t.UTC()
	return Competency{Year: u.Year(), Month: u.Month()}
}

// String formata a competência como mm-yyyy.
func (c Competency) String() string {
	return fmt.Sprintf("%02d-%04d", int(c.Month), c.Year)
}

// Start retorna o primeiro instante da competência (inclusivo).
func (c Competency) Start() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End retorna o primeiro instante da competência seguinte (exclusivo).
func (c Competency) End() time.Time {
	return c.Start().AddDate(0, 1, 0)
}

// Contains verifica se o instante pertence à competência comparando
// ano e mês em UTC.
func (c Competency) Contains(t time.Time) bool {
	u := t.UTC()
	return u.Year() == c.Year && u.Month() == c.Month
}

// DaysInMonth retorna a quantidade de dias da competência.
func (c Competency) DaysInMonth() int {
	return c.End().AddDate(0, 0, -1).Day()
}

// DaysPassed retorna quantos dias da competência já transcorreram em relação
// a now: o mês inteiro para competências passadas, o dia corrente para a
// competência atual e zero para competências futuras.
func (c Competency) DaysPassed(now time.Time) int {
	u := now.UTC()
	current := CompetencyOf(u)

	switch {
	case c == current:
		return u.Day()
	case c.Start().Before(current.Start()):
		return c.DaysInMonth()
	default:
		return 0
	}
}
