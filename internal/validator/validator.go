// Package validator contém transformações puras que limpam os valores vindos
// da API de anúncios antes da gravação no banco: coerção numérica com valor
// padrão, métricas derivadas com divisão segura e extração de conversões e
// receita das listas de ações.
package validator

import (
	"strconv"
	"strings"

	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/pkg/utils"
)

// Ordem de prioridade para extração de conversões: ações de compra vêm antes
// de sinais mais fracos, de modo que re-sincronizar o mesmo dia produz sempre
// o mesmo valor derivado.
var conversionPriority = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"omni_purchase",
	"offsite_conversion.fb_pixel_complete_registration",
	"lead",
}

// Para receita só interessam ações de compra.
var revenuePriority = conversionPriority[:3]

// SafeFloat converte o valor para float64. Valor nulo ou inválido retorna def,
// nunca erro.
func SafeFloat(value *string, def float64) float64 {
	if value == nil {
		return def
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return def
	}

	return f
}

// SafeInt converte o valor para int. Valor nulo ou inválido retorna def,
// nunca erro.
func SafeInt(value *string, def int) int {
	if value == nil {
		return def
	}

	i, err := strconv.Atoi(strings.TrimSpace(*value))
	if err != nil {
		return def
	}

	return i
}

// CalculateCTR calcula a taxa de cliques em porcentagem, com divisão segura.
func CalculateCTR(clicks, impressions int) float64 {
	if impressions > 0 {
		return utils.RoundWithFourDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}

	return 0.0
}

// CalculateCPC calcula o custo por clique, com divisão segura.
func CalculateCPC(spend float64, clicks int) float64 {
	if clicks > 0 {
		return utils.RoundWithFourDecimalPlace(spend / float64(clicks))
	}

	return 0.0
}

// CalculateCPM calcula o custo por mil impressões, com divisão segura.
func CalculateCPM(spend float64, impressions int) float64 {
	if impressions > 0 {
		return utils.RoundWithFourDecimalPlace(spend / float64(impressions) * 1000)
	}

	return 0.0
}

// CalculateROAS calcula o retorno sobre o investimento em anúncios, com
// divisão segura.
func CalculateROAS(revenue, spend float64) float64 {
	if spend > 0 {
		return utils.RoundWithFourDecimalPlace(revenue / spend)
	}

	return 0.0
}

// ExtractConversions percorre a lista de prioridade e retorna o valor da
// primeira ação prioritária encontrada, independente da ordem da lista de
// entrada. Sem correspondência, retorna 0.
func ExtractConversions(actions []domain.Action) int {
	if len(actions) == 0 {
		return 0
	}

	for _, actionType := range conversionPriority {
		for i := range actions {
			if actions[i].ActionType == actionType {
				return SafeInt(&actions[i].Value, 0)
			}
		}
	}

	return 0
}

// ExtractRevenue aplica a mesma varredura por prioridade sobre a lista
// action_values, considerando apenas ações de compra.
func ExtractRevenue(actionValues []domain.Action) float64 {
	if len(actionValues) == 0 {
		return 0.0
	}

	for _, actionType := range revenuePriority {
		for i := range actionValues {
			if actionValues[i].ActionType == actionType {
				return SafeFloat(&actionValues[i].Value, 0.0)
			}
		}
	}

	return 0.0
}
