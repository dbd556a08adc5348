package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"mortgage-api/domain"
	"mortgage-api/metrics"
	"mortgage-api/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPrincipalInterest computes the level monthly payment of a
// fixed-rate, fully amortizing loan. A zero rate degenerates to a
// straight-line split of the principal.
func MonthlyPrincipalInterest(loanAmount, annualRatePercent float64, termYears int) (float64, error) {
	if termYears <= 0 {
		return 0, domain.NewValidationError("loan_term_years", "must be positive")
	}

	numPayments := float64(termYears * 12)

	if annualRatePercent == 0 {
		return loanAmount / numPayments, nil
	}

	monthlyRate := (annualRatePercent / 100) / 12
	payment := loanAmount * (monthlyRate /
		(1 - math.Pow(1+monthlyRate, -numPayments)))

	return payment, nil
}

type MortgageService struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

// NewMortgageService creates a new MortgageService. The cache is optional;
// pass nil to compute every request from scratch.
func NewMortgageService(cache repository.CacheRepository, log *logrus.Logger) *MortgageService {
	return &MortgageService{cache: cache, log: log}
}

// Calculate turns loan parameters into an itemized monthly cost breakdown.
// It is deterministic and side-effect free apart from the result cache.
func (s *MortgageService) Calculate(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.PaymentBreakdown, error) {

	if err := validateInput(input); err != nil {
		metrics.RecordCalculation("calculate", "rejected")
		return domain.PaymentBreakdown{}, err
	}

	key := cacheKey(input)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var breakdown domain.PaymentBreakdown
			if err := json.Unmarshal([]byte(cached), &breakdown); err == nil {
				metrics.RecordCalculation("calculate", "cache_hit")
				return breakdown, nil
			}
		}
	}

	downPayment := input.PurchasePrice * input.DownPaymentPercentage / 100
	loanAmount := input.PurchasePrice - downPayment

	principalInterest, err := MonthlyPrincipalInterest(
		loanAmount, input.AnnualInterestRate, input.LoanTermYears)
	if err != nil {
		metrics.RecordCalculation("calculate", "rejected")
		return domain.PaymentBreakdown{}, err
	}

	monthlyTaxes := input.PurchasePrice * input.AnnualTaxRate / 100 / 12
	monthlyInsurance := input.PurchasePrice * input.AnnualInsuranceRate / 100 / 12

	// Component-wise rounding: each monthly component is rounded first and
	// the total is the exact sum of the rounded components, so the breakdown
	// always adds up to the total a client displays.
	piRounded := roundTo2Decimals(principalInterest)
	taxesRounded := roundTo2Decimals(monthlyTaxes)
	insuranceRounded := roundTo2Decimals(monthlyInsurance)
	hoaRounded := roundTo2Decimals(input.MonthlyHOAFee)
	total := roundTo2Decimals(piRounded + taxesRounded + insuranceRounded + hoaRounded)

	numPayments := float64(input.LoanTermYears * 12)
	totalOfPayments := principalInterest * numPayments
	totalInterest := totalOfPayments - loanAmount

	breakdown := domain.PaymentBreakdown{
		DownPayment:              roundTo2Decimals(downPayment),
		LoanAmount:               roundTo2Decimals(loanAmount),
		MonthlyPrincipalInterest: piRounded,
		MonthlyTaxes:             taxesRounded,
		MonthlyInsurance:         insuranceRounded,
		MonthlyHOAFee:            hoaRounded,
		TotalMonthlyPayment:      total,
		AnnualInterestRate:       input.AnnualInterestRate,
		LoanTermYears:            input.LoanTermYears,
		TotalOfPayments:          roundTo2Decimals(totalOfPayments),
		TotalInterest:            roundTo2Decimals(totalInterest),
	}

	// Cache the result (no impact on correctness if it fails)
	if s.cache != nil {
		if payload, err := json.Marshal(breakdown); err == nil {
			if err := s.cache.Set(ctx, key, string(payload)); err != nil {
				s.log.WithError(err).Warn("failed to cache calculation result")
			}
		}
	}

	metrics.RecordCalculation("calculate", "computed")
	return breakdown, nil
}

func validateInput(input domain.MortgageInput) error {
	if input.PurchasePrice < 0 {
		return domain.NewValidationError("purchase_price", "must be non-negative")
	}
	if input.PurchasePrice > MaxPurchasePrice {
		return domain.NewValidationError("purchase_price",
			fmt.Sprintf("exceeds the maximum of $%.2f", MaxPurchasePrice))
	}
	if input.DownPaymentPercentage < 0 || input.DownPaymentPercentage > 100 {
		return domain.NewValidationError("down_payment_percentage", "must be between 0 and 100")
	}
	if input.AnnualInterestRate < 0 {
		return domain.NewValidationError("annual_interest_rate", "must be non-negative")
	}
	if input.AnnualInterestRate > MaxInterestRate {
		return domain.NewValidationError("annual_interest_rate",
			fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	}
	if input.LoanTermYears <= 0 {
		return domain.NewValidationError("loan_term_years", "must be positive")
	}
	if input.LoanTermYears > MaxLoanTermYears {
		return domain.NewValidationError("loan_term_years",
			fmt.Sprintf("exceeds the maximum of %d years", MaxLoanTermYears))
	}
	if input.AnnualTaxRate < 0 || input.AnnualTaxRate > MaxTaxRate {
		return domain.NewValidationError("annual_tax_rate",
			fmt.Sprintf("must be between 0 and %.0f", MaxTaxRate))
	}
	if input.AnnualInsuranceRate < 0 || input.AnnualInsuranceRate > MaxInsuranceRate {
		return domain.NewValidationError("annual_insurance_rate",
			fmt.Sprintf("must be between 0 and %.0f", MaxInsuranceRate))
	}
	if input.MonthlyHOAFee < 0 {
		return domain.NewValidationError("monthly_hoa_fee", "must be non-negative")
	}
	if input.MonthlyHOAFee > MaxMonthlyHOAFee {
		return domain.NewValidationError("monthly_hoa_fee",
			fmt.Sprintf("exceeds the maximum of $%.2f", MaxMonthlyHOAFee))
	}
	return nil
}

func cacheKey(input domain.MortgageInput) string {
	return fmt.Sprintf("mortgage:%g:%g:%g:%d:%g:%g:%g",
		input.PurchasePrice,
		input.DownPaymentPercentage,
		input.AnnualInterestRate,
		input.LoanTermYears,
		input.AnnualTaxRate,
		input.AnnualInsuranceRate,
		input.MonthlyHOAFee,
	)
}
