package http

import (
	"mortgage-api/domain"
	"mortgage-api/service"
)

// calculationRequest is the strongly-typed request body. Pointer fields
// distinguish "omitted" (default applies) from "present but invalid" (the
// engine rejects it). annual_rate and loan_term are accepted as shorthand
// aliases; the long-form name wins when both are sent.
type calculationRequest struct {
	PurchasePrice         *float64 `json:"purchase_price"`
	DownPaymentPercentage *float64 `json:"down_payment_percentage"`
	AnnualInterestRate    *float64 `json:"annual_interest_rate"`
	AnnualRate            *float64 `json:"annual_rate"`
	LoanTermYears         *int     `json:"loan_term_years"`
	LoanTerm              *int     `json:"loan_term"`
	AnnualTaxRate         *float64 `json:"annual_tax_rate"`
	AnnualInsuranceRate   *float64 `json:"annual_insurance_rate"`
	MonthlyHOAFee         *float64 `json:"monthly_hoa_fee"`
}

type compareTermsRequest struct {
	calculationRequest
	Terms []int `json:"terms"`
}

// toInput applies the documented defaults to omitted fields and builds the
// engine input. Defaults never overwrite a value that was sent.
func (req *calculationRequest) toInput() (domain.MortgageInput, error) {
	if req.PurchasePrice == nil {
		return domain.MortgageInput{}, domain.NewValidationError("purchase_price", "is required")
	}

	input := domain.MortgageInput{
		PurchasePrice:         *req.PurchasePrice,
		DownPaymentPercentage: service.DefaultDownPaymentPercentage,
		AnnualInterestRate:    service.DefaultAnnualInterestRate,
		LoanTermYears:         service.DefaultLoanTermYears,
		AnnualTaxRate:         service.DefaultAnnualTaxRate,
		AnnualInsuranceRate:   service.DefaultAnnualInsuranceRate,
		MonthlyHOAFee:         service.DefaultMonthlyHOAFee,
	}

	if req.DownPaymentPercentage != nil {
		input.DownPaymentPercentage = *req.DownPaymentPercentage
	}
	switch {
	case req.AnnualInterestRate != nil:
		input.AnnualInterestRate = *req.AnnualInterestRate
	case req.AnnualRate != nil:
		input.AnnualInterestRate = *req.AnnualRate
	}
	switch {
	case req.LoanTermYears != nil:
		input.LoanTermYears = *req.LoanTermYears
	case req.LoanTerm != nil:
		input.LoanTermYears = *req.LoanTerm
	}
	if req.AnnualTaxRate != nil {
		input.AnnualTaxRate = *req.AnnualTaxRate
	}
	if req.AnnualInsuranceRate != nil {
		input.AnnualInsuranceRate = *req.AnnualInsuranceRate
	}
	if req.MonthlyHOAFee != nil {
		input.MonthlyHOAFee = *req.MonthlyHOAFee
	}

	return input, nil
}
