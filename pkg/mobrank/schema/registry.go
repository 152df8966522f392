// Package schema holds the static layout of every mobilizer group.
package schema

import "github.com/Ehmachado/rel6500-go/pkg/mobrank/models"

// Group names, in registry order.
const (
	DesembolsoPF        = "Mobilizador Desembolso PF"
	DesembolsoGiro      = "Mobilizador Desembolso Giro"
	DesembolsoAgro      = "Mobilizador Desembolso Agro"
	RegularizaDividas   = "Mobilizador Regulariza Dívidas Agro"
	Icred1590           = "Mobilizador Icred 15/90"
	PortfolioPriorizado = "Mobilizador Portfólio Priorizado"
)

func pct(name, col string) models.Field {
	return models.Field{Name: name, Column: col, Type: models.FieldPercentage}
}

func val(name, col string) models.Field {
	return models.Field{Name: name, Column: col, Type: models.FieldValue}
}

func cat(name, col string) models.Field {
	return models.Field{Name: name, Column: col, Type: models.FieldCategory}
}

// Default returns a fresh copy of the registry in iteration order.
func Default() []models.GroupSchema {
	return []models.GroupSchema{
		{
			Name:      DesembolsoPF,
			Preferred: "Conexao_105",
			Fields: []models.Field{
				pct("Conexao_105", "G"),
				val("Nec_Dia_1", "I"),
				val("Nec_Dia_2", "O"),
				cat("Subord_Veloc", "H"),
				val("Rlz_Dia", "J"),
			},
		},
		{
			Name:      DesembolsoGiro,
			Preferred: "Conexao_105",
			Fields: []models.Field{
				pct("Conexao_105", "M"),
				val("Nec_Dia", "U"),
				cat("Subord_Veloc", "N"),
				val("Rlz_Dia", "P"),
			},
		},
		{
			Name:      DesembolsoAgro,
			Preferred: "Atg",
			ScanRange: "S:U",
			Fields: []models.Field{
				pct("Atg", "S"),
				pct("Atg_T", "T"),
				pct("Atg_U", "U"),
				cat("Subord_Veloc", "T"),
			},
		},
		{
			Name:      RegularizaDividas,
			Preferred: "Conexao_105",
			ScanRange: "AB:AG",
			Fields: []models.Field{
				pct("Conexao_105", "AB"),
				pct("Conexao_AC", "AC"),
				pct("Conexao_AD", "AD"),
				pct("Conexao_AE", "AE"),
				pct("Conexao_AF", "AF"),
				pct("Conexao_AG", "AG"),
				val("Nec_Dia", "AJ"),
				val("Rlz_Dia", "AK"),
				pct("Atg", "AL"),
			},
		},
		{
			Name:      Icred1590,
			Preferred: "Atg",
			Fields: []models.Field{
				pct("Atg", "Y"),
				val("Nec_Dia", "AD"),
				cat("Subord_Veloc", "Z"),
				val("Rlz_Dia", "AE"),
			},
		},
		{
			Name:      PortfolioPriorizado,
			Preferred: "Atg",
			Fields: []models.Field{
				pct("Atg", "AH"),
				val("Nec_Dia", "AL"),
				cat("Subord_Veloc", "AI"),
				val("Rlz_Dia", "AM"),
			},
		},
	}
}

// Names returns the group names in registry order.
func Names() []string {
	groups := Default()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

// Lookup finds a group by exact name.
func Lookup(name string) (models.GroupSchema, bool) {
	for _, g := range Default() {
		if g.Name == name {
			return g, true
		}
	}
	return models.GroupSchema{}, false
}
