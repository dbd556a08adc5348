package service

import (
	"context"
	"fmt"
	"sort"

	"mortgage-api/domain"
	"mortgage-api/metrics"
)

type TermService struct {
	mortgageService *MortgageService
}

func NewTermService(mortgageService *MortgageService) *TermService {
	return &TermService{mortgageService: mortgageService}
}

// CompareTerms evaluates the same mortgage across several candidate loan
// terms so a client can weigh monthly payment against lifetime interest.
// An empty terms slice evaluates DefaultComparisonTerms.
func (s *TermService) CompareTerms(
	ctx context.Context,
	input domain.MortgageInput,
	terms []int,
) (domain.TermComparison, error) {

	if len(terms) == 0 {
		terms = DefaultComparisonTerms
	}
	if len(terms) > MaxComparedTerms {
		return domain.TermComparison{}, domain.NewValidationError("terms",
			fmt.Sprintf("at most %d terms per comparison", MaxComparedTerms))
	}

	seen := make(map[int]bool)
	candidates := make([]int, 0, len(terms))
	for _, term := range terms {
		if term <= 0 {
			return domain.TermComparison{}, domain.NewValidationError("terms", "must be positive")
		}
		if term > MaxLoanTermYears {
			return domain.TermComparison{}, domain.NewValidationError("terms",
				fmt.Sprintf("exceeds the maximum of %d years", MaxLoanTermYears))
		}
		if seen[term] {
			continue
		}
		seen[term] = true
		candidates = append(candidates, term)
	}
	sort.Ints(candidates)

	comparison := domain.TermComparison{
		Options: make([]domain.TermOption, 0, len(candidates)),
	}

	for _, term := range candidates {
		scenario := input
		scenario.LoanTermYears = term

		breakdown, err := s.mortgageService.Calculate(ctx, scenario)
		if err != nil {
			return domain.TermComparison{}, err
		}

		comparison.Options = append(comparison.Options, domain.TermOption{
			TermYears:                term,
			MonthlyPrincipalInterest: breakdown.MonthlyPrincipalInterest,
			TotalMonthlyPayment:      breakdown.TotalMonthlyPayment,
			TotalInterest:            breakdown.TotalInterest,
		})
	}

	metrics.RecordCalculation("compare_terms", "computed")
	return comparison, nil
}
