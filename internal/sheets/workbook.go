package sheets

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lure/sales-dashboard/internal/models"
	"github.com/lure/sales-dashboard/internal/normalize"
)

const (
	TabLeads       = "leads"
	TabCampaigns   = "campanhas"
	TabSalespeople = "vendedores"
	TabParameters  = "parametros"
)

// ParseWorkbook reads the four dashboard tabs from an XLSX stream. A missing
// tab yields an empty slice and a warning; an unreadable workbook is an error.
func ParseWorkbook(r io.Reader, now time.Time) (models.Snapshot, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Snapshot{}, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	names := map[string]string{}
	for _, name := range f.GetSheetList() {
		key := normalizeHeader(name)
		if _, ok := names[key]; !ok {
			names[key] = name
		}
	}

	var warnings []string
	read := func(tab string) ([][]string, error) {
		name, ok := names[tab]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("tab %q not found", tab))
			return nil, nil
		}
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read tab %q: %w", tab, err)
		}
		return rows, nil
	}

	snap := models.Snapshot{FetchedAt: now}

	rows, err := read(TabLeads)
	if err != nil {
		return models.Snapshot{}, warnings, err
	}
	snap.Leads = parseLeads(rows, now)

	if rows, err = read(TabCampaigns); err != nil {
		return models.Snapshot{}, warnings, err
	}
	snap.Campaigns = parseCampaigns(rows)

	if rows, err = read(TabSalespeople); err != nil {
		return models.Snapshot{}, warnings, err
	}
	snap.Salespeople = parseSalespeople(rows)

	if rows, err = read(TabParameters); err != nil {
		return models.Snapshot{}, warnings, err
	}
	snap.Parameters = parseParameters(rows)

	return snap, warnings, nil
}

func parseLeads(rows [][]string, now time.Time) []models.Lead {
	idx, records := split(rows)
	out := make([]models.Lead, 0, len(records))
	for i, rec := range records {
		id := normalize.ToInt(getField(rec, idx, "id"))
		if id == 0 {
			id = i + 1
		}
		out = append(out, models.Lead{
			ID:           id,
			Date:         normalize.ToDate(getField(rec, idx, "data"), now),
			Campaign:     getField(rec, idx, "campanha"),
			Channel:      getField(rec, idx, "canal"),
			Source:       getField(rec, idx, "origem"),
			ContactName:  getField(rec, idx, "lead_nome"),
			ContactPhone: getField(rec, idx, "lead_telefone"),
			Status:       getField(rec, idx, "status"),
			SaleValue:    normalize.ToNonNegative(getField(rec, idx, "valor_venda")),
			Closer:       getField(rec, idx, "vendedor"),
			SDR:          getField(rec, idx, "sdr"),
			Note:         getField(rec, idx, "observacao"),
		})
	}
	return out
}

func parseCampaigns(rows [][]string) []models.Campaign {
	idx, records := split(rows)
	out := make([]models.Campaign, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Campaign{
			Name:       getField(rec, idx, "campanha"),
			Budget:     normalize.ToNonNegative(getField(rec, idx, "orcamento")),
			LeadTarget: normalize.ToNonNegative(getField(rec, idx, "meta_leads")),
		})
	}
	return out
}

func parseSalespeople(rows [][]string) []models.Salesperson {
	idx, records := split(rows)
	out := make([]models.Salesperson, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Salesperson{
			Name:     getField(rec, idx, "vendedor"),
			Quota:    normalize.ToNonNegative(getField(rec, idx, "meta_vendas")),
			SDR:      getField(rec, idx, "sdr"),
			SDRQuota: normalize.ToNonNegative(getFieldAny(rec, idx, "meta_vendas_sdr", "meta_vendas_sd")),
		})
	}
	return out
}

func parseParameters(rows [][]string) []models.Parameter {
	idx, records := split(rows)
	out := make([]models.Parameter, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Parameter{
			Key:   getField(rec, idx, "chave"),
			Value: getField(rec, idx, "valor"),
		})
	}
	return out
}

// split separates the header row and drops fully blank records.
func split(rows [][]string) (map[string]int, [][]string) {
	if len(rows) == 0 {
		return map[string]int{}, nil
	}
	idx := headerIndex(rows[0])
	records := make([][]string, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		if blank(rec) {
			continue
		}
		records = append(records, rec)
	}
	return idx, records
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// headerIndex keeps the first column for repeated headers. Headers are
// case-insensitive, so "SDR" and "sdr" land on the same key.
func headerIndex(headers []string) map[string]int {
	idx := map[string]int{}
	for i, h := range headers {
		key := normalizeHeader(h)
		if _, ok := idx[key]; ok || key == "" {
			continue
		}
		idx[key] = i
	}
	return idx
}

func getField(rec []string, idx map[string]int, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(rec) {
		return ""
	}
	return normalize.ToText(rec[pos])
}

func getFieldAny(rec []string, idx map[string]int, names ...string) string {
	for _, name := range names {
		if v := getField(rec, idx, normalizeHeader(name)); v != "" {
			return v
		}
	}
	return ""
}

func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	return strings.ToLower(strings.TrimSpace(h))
}
