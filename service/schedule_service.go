package service

import (
	"context"

	"mortgage-api/domain"
	"mortgage-api/metrics"
)

type ScheduleService struct {
	mortgageService *MortgageService
}

func NewScheduleService(mortgageService *MortgageService) *ScheduleService {
	return &ScheduleService{mortgageService: mortgageService}
}

// Schedule builds the month-by-month amortization schedule for a loan. Each
// level payment is split into interest on the running balance and principal;
// the final payment absorbs the residual so the balance terminates at zero.
func (s *ScheduleService) Schedule(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.AmortizationSchedule, error) {

	breakdown, err := s.mortgageService.Calculate(ctx, input)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	downPayment := input.PurchasePrice * input.DownPaymentPercentage / 100
	loanAmount := input.PurchasePrice - downPayment

	schedule := domain.AmortizationSchedule{
		LoanAmount:     breakdown.LoanAmount,
		MonthlyPayment: breakdown.MonthlyPrincipalInterest,
		Entries:        []domain.AmortizationEntry{},
	}

	if loanAmount <= BalanceTolerance {
		return schedule, nil
	}

	// Full precision internally; rounding happens per entry for display.
	payment, err := MonthlyPrincipalInterest(
		loanAmount, input.AnnualInterestRate, input.LoanTermYears)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	monthlyRate := (input.AnnualInterestRate / 100) / 12
	numPayments := input.LoanTermYears * 12
	balance := loanAmount
	totalInterest := 0.0

	for month := 1; month <= numPayments; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		monthPayment := payment

		// The last payment clears whatever is left, including the cents the
		// level payment over- or undershoots by.
		if month == numPayments || principal >= balance {
			principal = balance
			monthPayment = principal + interest
		}

		balance -= principal
		totalInterest += interest

		schedule.Entries = append(schedule.Entries, domain.AmortizationEntry{
			Month:            month,
			Payment:          roundTo2Decimals(monthPayment),
			Principal:        roundTo2Decimals(principal),
			Interest:         roundTo2Decimals(interest),
			RemainingBalance: roundTo2Decimals(balance),
		})

		if balance <= BalanceTolerance {
			break
		}
	}

	schedule.TotalInterest = roundTo2Decimals(totalInterest)

	metrics.RecordCalculation("schedule", "computed")
	return schedule, nil
}
