package service

const (
	MaxPurchasePrice = 1_000_000_000.0 // 1 billion
	MaxInterestRate  = 100.0           // 100% annual
	MaxLoanTermYears = 50
	MaxTaxRate       = 100.0
	MaxInsuranceRate = 100.0
	MaxMonthlyHOAFee = 100_000.0
	BalanceTolerance = 0.01 // balance below this is considered paid off
	MaxComparedTerms = 10   // maximum candidate terms per comparison request
)

// Defaults applied at the HTTP boundary when a field is omitted entirely.
// The engine itself never substitutes defaults for invalid values.
const (
	DefaultDownPaymentPercentage = 20.0
	DefaultAnnualInterestRate    = 6.5
	DefaultLoanTermYears         = 30
	DefaultAnnualTaxRate         = 1.2
	DefaultAnnualInsuranceRate   = 0.35
	DefaultMonthlyHOAFee         = 0.0
)

// DefaultComparisonTerms are the loan terms evaluated when a comparison
// request does not name its own candidates.
var DefaultComparisonTerms = []int{15, 20, 30}
