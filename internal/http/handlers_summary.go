package http

import (
	"net/http"

	"spendtrack/internal/core"
	"spendtrack/internal/currency"
)

// noDataLabel pads the top-category list when fewer than three categories
// have spending.
const noDataLabel = "No data"

type categoryAmountJSON struct {
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formattedAmount,omitempty"`
}

type monthTotalJSON struct {
	Label           string  `json:"label"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formattedAmount"`
}

type summaryResponse struct {
	Total            float64              `json:"total"`
	FormattedTotal   string               `json:"formattedTotal"`
	Count            int                  `json:"count"`
	Average          float64              `json:"average"`
	FormattedAverage string               `json:"formattedAverage"`
	Max              float64              `json:"max"`
	FormattedMax     string               `json:"formattedMax"`
	CategoryTotals   []categoryAmountJSON `json:"categoryTotals"`
	MonthlyTotals    []monthTotalJSON     `json:"monthlyTotals"`
	TopCategories    []categoryAmountJSON `json:"topCategories"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	spec, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	code := s.profile.Currency()
	filtered := core.Filter(s.expenses.List(), spec)
	byCategory := core.CategoryTotals(filtered)
	insights := core.Summarize(filtered)

	resp := summaryResponse{
		Total:          core.Total(filtered),
		Count:          insights.Count,
		Average:        insights.Average,
		Max:            insights.Max,
		CategoryTotals: make([]categoryAmountJSON, 0, len(byCategory)),
		MonthlyTotals:  []monthTotalJSON{},
		TopCategories:  make([]categoryAmountJSON, 0, 3),
	}
	resp.FormattedTotal = currency.Format(resp.Total, code)
	resp.FormattedAverage = currency.Format(resp.Average, code)
	resp.FormattedMax = currency.Format(resp.Max, code)

	for _, ca := range byCategory {
		resp.CategoryTotals = append(resp.CategoryTotals, categoryAmountJSON{
			Name:            ca.Name,
			Amount:          ca.Amount,
			FormattedAmount: currency.Format(ca.Amount, code),
		})
	}

	for _, mt := range core.MonthlyTotals(filtered) {
		resp.MonthlyTotals = append(resp.MonthlyTotals, monthTotalJSON{
			Label:           mt.Label(),
			Amount:          mt.Amount,
			FormattedAmount: currency.Format(mt.Amount, code),
		})
	}

	// Always exactly three entries, padded with placeholders.
	for _, ca := range core.TopCategories(byCategory, 3) {
		resp.TopCategories = append(resp.TopCategories, categoryAmountJSON{
			Name:            ca.Name,
			Amount:          ca.Amount,
			FormattedAmount: currency.Format(ca.Amount, code),
		})
	}
	for len(resp.TopCategories) < 3 {
		resp.TopCategories = append(resp.TopCategories, categoryAmountJSON{Name: noDataLabel})
	}

	writeJSON(w, http.StatusOK, resp)
}
