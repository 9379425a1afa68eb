package pdfgen

// Defaults substituted when the request omits a field. The literal
// values match the business document templates.
const (
	defaultWebsite       = "www.aramcoenergy.co.uk"
	defaultBusinessHours = "8:30am to 5:30pm, Monday to Friday"
)

// Request is the caller-supplied data driving field substitution.
// Every field is optional; absent fields render a literal fallback
// (e.g. "N/A", "TBC"). A Request is never mutated during rendering.
type Request struct {
	Customer      Customer `json:"customer"`
	Account       Account  `json:"account"`
	Pricing       Pricing  `json:"pricing"`
	Website       string   `json:"website"`
	BusinessHours string   `json:"business_hours"`
	Date          string   `json:"date"`
	DateDisplay   string   `json:"date_display"`
}

// Customer identifies the account holder and their site.
type Customer struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	AccountNumber  string `json:"account_number"`
	CustomerNumber string `json:"customer_number"`
	Phone          string `json:"phone"`
	ServiceAddress string `json:"service_address"`
}

// Account holds the supply and contract details. MPAN is the Meter
// Point Administration Number, passed through verbatim.
type Account struct {
	MPAN                     string `json:"mpan"`
	ProfileClass             string `json:"profile_class"`
	ContractType             string `json:"contract_type"`
	ProductType              string `json:"product_type"`
	ContractStartDate        string `json:"contract_start_date"`
	ContractStartDateDisplay string `json:"contract_start_date_display"`
	ContractEndDate          string `json:"contract_end_date"`
}

// Pricing holds the standing charge and unit rates. Values are
// preformatted strings; the renderer does no arithmetic on them.
type Pricing struct {
	StandingCharge     string `json:"standing_charge"`
	StandingChargeUnit string `json:"standing_charge_unit"`
	Rate1              string `json:"rate_1"`
	Rate1Unit          string `json:"rate_1_unit"`
	Rate1Label         string `json:"rate_1_label"`
	Rate1Description   string `json:"rate_1_description"`
	Rate2              string `json:"rate_2"`
	Rate2Unit          string `json:"rate_2_unit"`
	Rate2Label         string `json:"rate_2_label"`
	Rate2Description   string `json:"rate_2_description"`
	Rate3Description   string `json:"rate_3_description"`
}

// dateDisplay resolves the letter date: the display form wins over the
// raw date, and both may be absent.
func (r *Request) dateDisplay() string {
	if r.DateDisplay != "" {
		return r.DateDisplay
	}
	return fallback(r.Date, "N/A")
}

// fallback substitutes def when the request omitted v.
func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
