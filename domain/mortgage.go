package domain

// MortgageInput holds the validated parameters of a single calculation.
// It is passed by value into the services and never retained.
type MortgageInput struct {
	PurchasePrice         float64
	DownPaymentPercentage float64
	AnnualInterestRate    float64
	LoanTermYears         int
	AnnualTaxRate         float64
	AnnualInsuranceRate   float64
	MonthlyHOAFee         float64
}

// PaymentBreakdown is the itemized monthly cost of a mortgage. All currency
// fields are rounded to 2 decimals; TotalMonthlyPayment is the exact sum of
// the four rounded monthly components.
type PaymentBreakdown struct {
	DownPayment              float64 `json:"down_payment"`
	LoanAmount               float64 `json:"loan_amount"`
	MonthlyPrincipalInterest float64 `json:"monthly_principal_interest"`
	MonthlyTaxes             float64 `json:"monthly_taxes"`
	MonthlyInsurance         float64 `json:"monthly_insurance"`
	MonthlyHOAFee            float64 `json:"monthly_hoa_fee"`
	TotalMonthlyPayment      float64 `json:"total_monthly_payment"`
	AnnualInterestRate       float64 `json:"annual_interest_rate"`
	LoanTermYears            int     `json:"loan_term_years"`
	TotalOfPayments          float64 `json:"total_of_payments"`
	TotalInterest            float64 `json:"total_interest"`
}

// AmortizationEntry is one month of an amortization schedule.
type AmortizationEntry struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type AmortizationSchedule struct {
	LoanAmount     float64             `json:"loan_amount"`
	MonthlyPayment float64             `json:"monthly_payment"`
	TotalInterest  float64             `json:"total_interest"`
	Entries        []AmortizationEntry `json:"schedule"`
}

// TermOption is one candidate loan term in a term comparison.
type TermOption struct {
	TermYears                int     `json:"term_years"`
	MonthlyPrincipalInterest float64 `json:"monthly_principal_interest"`
	TotalMonthlyPayment      float64 `json:"total_monthly_payment"`
	TotalInterest            float64 `json:"total_interest"`
}

type TermComparison struct {
	Options []TermOption `json:"options"`
}
