package domain_test

import (
	"testing"

	"github.com/spec-kit/reagent-inventory/internal/domain"
)

func TestFormatUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"KG", "kg"},
		{"kilogramas", "kg"},
		{"Kilo", "kg"},
		{"L", "L"},
		{"litros", "L"},
		{"LITRO", "L"},
		{"g", "g"},
		{"GRAMAS", "g"},
		{"ml", "mL"},
		{"Mililitros", "mL"},
		{"UNIDADES", "unidades"},
		{"un", "unidades"},
		{"caixas", "caixa"},
		{"FRASCOS", "frasco"},
		{"  l  ", "L"},
		{"galão", "galão"}, // unrecognized passes through unchanged
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := domain.FormatUnit(tc.input); got != tc.want {
				t.Fatalf("FormatUnit(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  domain.UnitType
	}{
		{"kg", domain.UnitKG},
		{"KILOGRAMAS", domain.UnitKG},
		{"Litros", domain.UnitL},
		{"litro", domain.UnitL},
		{"grama", domain.UnitG},
		{"MILILITRO", domain.UnitML},
		{"unidade", domain.UnitUnidades},
		{"UN", domain.UnitUnidades},
		{"Caixas", domain.UnitCaixa},
		{"frascos", domain.UnitFrasco},
		{" ml ", domain.UnitML},
		{"galão", domain.UnitType("GALÃO")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := domain.NormalizeUnit(tc.input); got != tc.want {
				t.Fatalf("NormalizeUnit(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
