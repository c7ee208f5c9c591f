package models

import "time"

type Role string

const (
	RoleCloser Role = "closer"
	RoleSDR    Role = "sdr"
)

type Lead struct {
	ID           int     `json:"id"`
	Date         string  `json:"data"`
	Campaign     string  `json:"campanha"`
	Channel      string  `json:"canal"`
	Source       string  `json:"origem"`
	ContactName  string  `json:"lead_nome"`
	ContactPhone string  `json:"lead_telefone"`
	Status       string  `json:"status"`
	SaleValue    float64 `json:"valor_venda"`
	Closer       string  `json:"vendedor"`
	SDR          string  `json:"sdr"`
	Note         string  `json:"observacao"`
}

type Campaign struct {
	Name       string  `json:"campanha"`
	Budget     float64 `json:"orcamento"`
	LeadTarget float64 `json:"meta_leads"`
}

type Salesperson struct {
	Name     string  `json:"vendedor"`
	Quota    float64 `json:"meta_vendas"`
	SDR      string  `json:"sdr"`
	SDRQuota float64 `json:"meta_vendas_sdr"`
}

type Parameter struct {
	Key   string `json:"chave"`
	Value string `json:"valor"`
}

// Snapshot is one complete read of the spreadsheet. It is never updated in place.
type Snapshot struct {
	Leads       []Lead        `json:"leads"`
	Campaigns   []Campaign    `json:"campanhas"`
	Salespeople []Salesperson `json:"vendedores"`
	Parameters  []Parameter   `json:"parametros"`
	FetchedAt   time.Time     `json:"fetched_at"`
}

type SalesMetric struct {
	SalespersonID  int     `json:"salespersonId"`
	Name           string  `json:"name"`
	TotalSales     float64 `json:"totalSales"`
	CashCollected  float64 `json:"cashCollected"`
	LtvSales       float64 `json:"ltvSales"`
	ConversionRate float64 `json:"conversionRate"`
	ChurnRate      float64 `json:"churnRate"`
	AverageTicket  float64 `json:"averageTicket"`
	Role           Role    `json:"role"`
}
