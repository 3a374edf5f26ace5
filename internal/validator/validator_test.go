package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		def      float64
		expected float64
	}{
		{name: "Valor nulo retorna o padrão", value: nil, def: 5.0, expected: 5.0},
		{name: "Valor inválido retorna o padrão", value: strPtr("abc"), def: 0.0, expected: 0.0},
		{name: "Valor numérico é convertido", value: strPtr("3.5"), def: 0.0, expected: 3.5},
		{name: "Inteiro em string é convertido", value: strPtr("5000"), def: 0.0, expected: 5000.0},
		{name: "String vazia retorna o padrão", value: strPtr(""), def: 1.5, expected: 1.5},
		{name: "Espaços em volta são tolerados", value: strPtr(" 12.34 "), def: 0.0, expected: 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeFloat(tt.value, tt.def))
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		def      int
		expected int
	}{
		{name: "Valor nulo retorna o padrão", value: nil, def: 7, expected: 7},
		{name: "Valor inválido retorna o padrão", value: strPtr("abc"), def: 0, expected: 0},
		{name: "Float em string retorna o padrão", value: strPtr("3.5"), def: 0, expected: 0},
		{name: "Inteiro é convertido", value: strPtr("1000"), def: 0, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeInt(tt.value, tt.def))
		})
	}
}

func TestCalculateCTR(t *testing.T) {
	tests := []struct {
		name        string
		clicks      int
		impressions int
		expected    float64
	}{
		{name: "Impressões zero retorna zero mesmo com cliques", clicks: 50, impressions: 0, expected: 0.0},
		{name: "Impressões negativas retorna zero", clicks: 50, impressions: -10, expected: 0.0},
		{name: "CTR calculado e arredondado em 4 casas", clicks: 20, impressions: 1000, expected: 2.0},
		{name: "CTR com dízima é arredondado", clicks: 1, impressions: 3, expected: 33.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCTR(tt.clicks, tt.impressions))
		})
	}
}

func TestCalculateCPC(t *testing.T) {
	tests := []struct {
		name     string
		spend    float64
		clicks   int
		expected float64
	}{
		{name: "Cliques zero retorna zero", spend: 100.0, clicks: 0, expected: 0.0},
		{name: "Cliques negativos retorna zero", spend: 100.0, clicks: -5, expected: 0.0},
		{name: "CPC calculado", spend: 100.0, clicks: 20, expected: 5.0},
		{name: "CPC com dízima é arredondado", spend: 10.0, clicks: 3, expected: 3.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCPC(tt.spend, tt.clicks))
		})
	}
}

func TestCalculateCPM(t *testing.T) {
	tests := []struct {
		name        string
		spend       float64
		impressions int
		expected    float64
	}{
		{name: "Impressões zero retorna zero", spend: 100.0, impressions: 0, expected: 0.0},
		{name: "CPM calculado", spend: 100.0, impressions: 1000, expected: 100.0},
		{name: "CPM com dízima é arredondado", spend: 7.0, impressions: 3000, expected: 2.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCPM(tt.spend, tt.impressions))
		})
	}
}

func TestCalculateROAS(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		spend    float64
		expected float64
	}{
		{name: "Spend zero retorna zero", revenue: 500.0, spend: 0.0, expected: 0.0},
		{name: "Spend negativo retorna zero", revenue: 500.0, spend: -1.0, expected: 0.0},
		{name: "ROAS calculado", revenue: 300.0, spend: 100.0, expected: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateROAS(tt.revenue, tt.spend))
		})
	}
}

func TestExtractConversions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []domain.Action
		expected int
	}{
		{
			name:     "Lista vazia retorna zero",
			actions:  []domain.Action{},
			expected: 0,
		},
		{
			name:     "Lista nula retorna zero",
			actions:  nil,
			expected: 0,
		},
		{
			name: "Nenhuma ação prioritária retorna zero",
			actions: []domain.Action{
				{ActionType: "link_click", Value: "42"},
				{ActionType: "post_engagement", Value: "10"},
			},
			expected: 0,
		},
		{
			name: "Compra de pixel tem prioridade sobre lead, independente da ordem",
			actions: []domain.Action{
				{ActionType: "lead", Value: "9"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
			},
			expected: 3,
		},
		{
			name: "Purchase tem prioridade sobre omni_purchase",
			actions: []domain.Action{
				{ActionType: "omni_purchase", Value: "7"},
				{ActionType: "purchase", Value: "5"},
			},
			expected: 5,
		},
		{
			name: "Lead é usado quando é a única ação prioritária",
			actions: []domain.Action{
				{ActionType: "video_view", Value: "100"},
				{ActionType: "lead", Value: "4"},
			},
			expected: 4,
		},
		{
			name: "Valor inválido na ação prioritária vira zero",
			actions: []domain.Action{
				{ActionType: "purchase", Value: "abc"},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractConversions(tt.actions))
		})
	}
}

func TestExtractRevenue(t *testing.T) {
	tests := []struct {
		name         string
		actionValues []domain.Action
		expected     float64
	}{
		{
			name:         "Lista vazia retorna zero",
			actionValues: nil,
			expected:     0.0,
		},
		{
			name: "Registro de pixel não entra na receita",
			actionValues: []domain.Action{
				{ActionType: "offsite_conversion.fb_pixel_complete_registration", Value: "150.0"},
				{ActionType: "lead", Value: "80.0"},
			},
			expected: 0.0,
		},
		{
			name: "Compra de pixel tem prioridade",
			actionValues: []domain.Action{
				{ActionType: "purchase", Value: "200.0"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "350.5"},
			},
			expected: 350.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRevenue(tt.actionValues))
		})
	}
}
