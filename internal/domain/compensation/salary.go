package compensation

import (
	"math"

	"hrdesk/internal/platform/apperr"
)

// PFRatePercent is the statutory provident fund deduction applied to base salary.
const PFRatePercent = 12

// MaxAmount bounds every stored amount so base plus bonus always fits in int64.
const MaxAmount int64 = math.MaxInt64 / 2

var (
	ErrNegativeAmount = apperr.New(apperr.KindValidation, "salary amounts must not be negative")
	ErrAmountTooLarge = apperr.New(apperr.KindValidation, "salary amounts exceed the supported maximum")
)

// Salary amounts are integer minor currency units.
type Salary struct {
	Base         int64 `json:"base,string"`
	Bonus        int64 `json:"bonus,string"`
	PFDeduction  int64 `json:"pfDeduction,string"`
	FinalPayable int64 `json:"finalPayable,string"`
}

type Breakdown struct {
	Base           int64 `json:"base,string"`
	Bonus          int64 `json:"bonus,string"`
	PFDeduction    int64 `json:"pfDeduction,string"`
	LeaveDeduction int64 `json:"leaveDeduction,string"`
	FinalPayable   int64 `json:"finalPayable,string"`
}

// Calculate derives the display breakdown. Leave deduction is always zero.
// Gross pay saturates at math.MaxInt64 instead of wrapping.
func Calculate(s Salary) Breakdown {
	b := Breakdown{
		Base:        s.Base,
		Bonus:       s.Bonus,
		PFDeduction: s.PFDeduction,
	}
	b.FinalPayable = max(0, addCapped(b.Base, b.Bonus)-b.PFDeduction-b.LeaveDeduction)
	return b
}

// PFDeduction returns round(base * 0.12), halves rounded away from zero.
// Whole hundreds are scaled separately so the product cannot overflow.
func PFDeduction(base int64) int64 {
	hundreds, rest := base/100, base%100
	return hundreds*PFRatePercent + roundHundredths(rest*PFRatePercent)
}

func roundHundredths(scaled int64) int64 {
	if scaled >= 0 {
		return (scaled + 50) / 100
	}
	return (scaled - 50) / 100
}

func addCapped(a, b int64) int64 {
	if a > 0 && b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// CheckAmounts validates a base and bonus before a salary is derived from them.
func CheckAmounts(base, bonus int64) error {
	if base < 0 || bonus < 0 {
		return ErrNegativeAmount
	}
	if base > MaxAmount || bonus > MaxAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// NewSalary builds the stored salary for a base and bonus, deriving the PF
// deduction and precomputing the final payable amount.
func NewSalary(base, bonus int64) Salary {
	s := Salary{Base: base, Bonus: bonus, PFDeduction: PFDeduction(base)}
	s.FinalPayable = Calculate(s).FinalPayable
	return s
}

func Validate(s Salary) error {
	if s.Base < 0 || s.Bonus < 0 || s.PFDeduction < 0 || s.FinalPayable < 0 {
		return ErrNegativeAmount
	}
	if s.Base > MaxAmount || s.Bonus > MaxAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// EffectiveBonus reconciles the two bonus fields employees carry: the nested
// salary bonus wins, the top-level bonus fills in when it is zero.
func EffectiveBonus(s Salary, topLevelBonus int64) int64 {
	if s.Bonus != 0 {
		return s.Bonus
	}
	return topLevelBonus
}
