package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("período inválido")

// Period identifica um mês de referência das métricas
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf retorna o período do instante informado
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: mês %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 2000 || p.Year > 2100 {
		return fmt.Errorf("%w: ano %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Previous retorna o mês anterior, virando o ano em janeiro
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Index converte o período em um número sequencial de meses, útil para detectar lacunas
func (p Period) Index() int {
	return p.Year*12 + p.Month - 1
}

func (p Period) Before(other Period) bool {
	return p.Index() < other.Index()
}

// String retorna o período no formato mm-yyyy
func (p Period) String() string {
	return fmt.Sprintf("%02d-%d", p.Month, p.Year)
}
