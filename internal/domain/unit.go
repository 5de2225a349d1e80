package domain

import "strings"

// FormatUnit maps a raw unit value to its display label. Input is matched
// case-insensitively after trimming, over the accepted synonym set.
// Unrecognized values pass through unchanged so that legacy records keep
// rendering whatever was stored.
func FormatUnit(unit string) string {
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "KG", "KILOGRAMAS", "KILO":
		return "kg"
	case "L", "LITROS", "LITRO":
		return "L"
	case "G", "GRAMAS", "GRAMA":
		return "g"
	case "ML", "MILILITROS", "MILILITRO":
		return "mL"
	case "UNIDADES", "UNIDADE", "UN":
		return "unidades"
	case "CAIXA", "CAIXAS":
		return "caixa"
	case "FRASCO", "FRASCOS":
		return "frasco"
	default:
		return unit
	}
}

// NormalizeUnit maps a raw unit value to its canonical enum for storage.
// Same synonym set and leniency as FormatUnit: unknown input is stored
// upper-cased as-is rather than rejected.
func NormalizeUnit(unit string) UnitType {
	normalized := strings.ToUpper(strings.TrimSpace(unit))
	switch normalized {
	case "KG", "KILOGRAMAS", "KILO":
		return UnitKG
	case "L", "LITROS", "LITRO":
		return UnitL
	case "G", "GRAMAS", "GRAMA":
		return UnitG
	case "ML", "MILILITROS", "MILILITRO":
		return UnitML
	case "UNIDADES", "UNIDADE", "UN":
		return UnitUnidades
	case "CAIXA", "CAIXAS":
		return UnitCaixa
	case "FRASCO", "FRASCOS":
		return UnitFrasco
	default:
		return UnitType(normalized)
	}
}
