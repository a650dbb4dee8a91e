package domain

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidCriterion = errors.New("critério de badge inválido")

// CriterionKind é o conjunto fechado de regras de conquista suportadas
type CriterionKind string

const (
	CriterionFirstRecord      CriterionKind = "primeiro_registro"
	CriterionStreak           CriterionKind = "streak_consecutivo"
	CriterionPunctuality      CriterionKind = "pontualidade"
	CriterionRevenueGoal      CriterionKind = "faturamento_meta"
	CriterionGrowth           CriterionKind = "crescimento"
	CriterionMinRevenue       CriterionKind = "faturamento_minimo"
	CriterionRankingTop       CriterionKind = "ranking_top"
	CriterionAboveAverage     CriterionKind = "acima_media"
	CriterionMinLeads         CriterionKind = "leads_minimo"
	CriterionConversion       CriterionKind = "conversao"
	CriterionPlaybookComplete CriterionKind = "playbook_completo"
	CriterionMentoringMonths  CriterionKind = "meses_mentoria"
)

const defaultMentoringMonths = 6

// Criterion é a regra de uma badge. Apenas os parâmetros do Kind são usados.
type Criterion struct {
	Kind     CriterionKind `json:"tipo"`
	Months   int           `json:"meses,omitempty"`
	Day      int           `json:"dia,omitempty"`
	Percent  float64       `json:"percentual,omitempty"`
	Value    float64       `json:"valor,omitempty"`
	Position int           `json:"posicao,omitempty"`
}

// ParseCriterion decodifica o JSON armazenado e valida os parâmetros do tipo
func ParseCriterion(raw string) (Criterion, error) {
	var c Criterion
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &c); err != nil {
		return Criterion{}, fmt.Errorf("%w: %v", ErrInvalidCriterion, err)
	}

	c.normalize()

	if err := c.Validate(); err != nil {
		return Criterion{}, err
	}
	return c, nil
}

// normalize aplica os fallbacks aceitos nos critérios gravados
func (c *Criterion) normalize() {
	switch c.Kind {
	case CriterionGrowth, CriterionConversion:
		if c.Percent == 0 && c.Value > 0 {
			c.Percent = c.Value
		}
	case CriterionMentoringMonths:
		if c.Value == 0 {
			c.Value = defaultMentoringMonths
		}
	}
}

func (c Criterion) Validate() error {
	switch c.Kind {
	case CriterionFirstRecord, CriterionRevenueGoal, CriterionPlaybookComplete:
		return nil
	case CriterionStreak, CriterionAboveAverage:
		if c.Months < 1 {
			return c.invalid("meses deve ser maior que zero")
		}
	case CriterionPunctuality:
		if c.Months < 1 {
			return c.invalid("meses deve ser maior que zero")
		}
		if c.Day < 1 || c.Day > 31 {
			return c.invalid("dia deve estar entre 1 e 31")
		}
	case CriterionGrowth, CriterionConversion:
		if c.Percent <= 0 {
			return c.invalid("percentual deve ser maior que zero")
		}
	case CriterionMinRevenue, CriterionMinLeads, CriterionMentoringMonths:
		if c.Value <= 0 {
			return c.invalid("valor deve ser maior que zero")
		}
	case CriterionRankingTop:
		if c.Position < 1 {
			return c.invalid("posicao deve ser maior que zero")
		}
	default:
		return fmt.Errorf("%w: tipo desconhecido %q", ErrInvalidCriterion, c.Kind)
	}
	return nil
}

func (c Criterion) invalid(reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidCriterion, c.Kind, reason)
}

// Encode serializa o critério no formato gravado na coluna criterion
func (c Criterion) Encode() string {
	s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(c)
	if err != nil {
		return ""
	}
	return s
}
