package demo

import "github.com/vfg2006/marketing-dashboard-api/internal/domain"

// Cores dos canais usadas pelos gráficos
const (
	FillGoogle   = "#4285f4"
	FillMeta     = "#1877f2"
	FillTikTok   = "#ff0050"
	FillLinkedIn = "#0a66c2"
	FillEmail    = "#10b981"
	FillOrganic  = "#f59e0b"
)

// DefaultWaterfall é o dataset fixo exibido quando as contribuições atuais são inválidas
func DefaultWaterfall() []domain.Contribution {
	return []domain.Contribution{
		{Name: "Google Ads", Value: 125000, Fill: FillGoogle},
		{Name: "Meta Ads", Value: 98000, Fill: FillMeta},
		{Name: "TikTok Ads", Value: 42000, Fill: FillTikTok},
		{Name: "LinkedIn Ads", Value: 31000, Fill: FillLinkedIn},
		{Name: "Email", Value: 27500, Fill: FillEmail},
		{Name: "Organic Search", Value: 56000, Fill: FillOrganic},
	}
}

type channelProfile struct {
	name string
	fill string
	// investimento médio no período; zero para canais sem mídia paga
	baseCost float64
	// receita base para canais sem investimento
	baseRevenue    float64
	roas           float64
	ctr            float64
	conversionRate float64
	// custo por mil impressões
	cpm float64
	// teto e velocidade de saturação da curva de resposta
	curveCeiling float64
	curveScale   float64
}

var channelProfiles = []channelProfile{
	{name: "Google Ads", fill: FillGoogle, baseCost: 42000, roas: 3.2, ctr: 0.035, conversionRate: 0.041, cpm: 18, curveCeiling: 260000, curveScale: 55000},
	{name: "Meta Ads", fill: FillMeta, baseCost: 36000, roas: 2.7, ctr: 0.018, conversionRate: 0.029, cpm: 9, curveCeiling: 190000, curveScale: 48000},
	{name: "TikTok Ads", fill: FillTikTok, baseCost: 18000, roas: 2.1, ctr: 0.012, conversionRate: 0.018, cpm: 6, curveCeiling: 95000, curveScale: 40000},
	{name: "LinkedIn Ads", fill: FillLinkedIn, baseCost: 15000, roas: 1.9, ctr: 0.008, conversionRate: 0.052, cpm: 32, curveCeiling: 70000, curveScale: 45000},
	{name: "Email", fill: FillEmail, baseCost: 3500, roas: 7.5, ctr: 0.042, conversionRate: 0.061, cpm: 1.2, curveCeiling: 40000, curveScale: 12000},
	{name: "Organic Search", fill: FillOrganic, baseRevenue: 56000, ctr: 0.028, conversionRate: 0.034},
}

var campaignTypes = []string{"Brand", "Prospecting", "Retargeting"}

// Fatores usados como filtro no painel mensal
var monthlyFactors = []string{"baseline", "seasonal", "promotion"}

// sazonalidade mensal do varejo, Jan a Dec
var seasonality = [12]float64{0.82, 0.78, 0.9, 0.95, 1.05, 0.98, 0.94, 1.0, 1.02, 1.08, 1.35, 1.52}

type abTestDefinition struct {
	name    string
	channel string
	// multiplicador da taxa de conversão do tratamento
	uplift float64
}

var abTestDefinitions = []abTestDefinition{
	{name: "Headline com preço", channel: "Google Ads", uplift: 1.18},
	{name: "Criativo em vídeo", channel: "Meta Ads", uplift: 1.25},
	{name: "CTA no topo", channel: "TikTok Ads", uplift: 1.02},
	{name: "Assunto personalizado", channel: "Email", uplift: 1.11},
	{name: "Formulário curto", channel: "LinkedIn Ads", uplift: 0.94},
}
