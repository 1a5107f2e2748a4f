package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// ErrNoTierMatched is returned when a weight falls outside every tariff
// tier. With a well-formed tariff (contiguous tiers, open-ended last tier)
// this only happens for invalid weights that slipped past the caller.
var ErrNoTierMatched = errors.New("no pricing tier matched")

// Tier is one weight bracket of a tariff: parcels with
// min < weight <= max are billed at RatePerKg.
type Tier struct {
	MinKg     float64
	MaxKg     float64 // math.Inf(1) for the open-ended last tier
	RatePerKg float64
	Label     string
}

// FeeSchedule is the set of flat fees added to every quote regardless of
// the matched tier.
type FeeSchedule struct {
	Base      float64
	Insurance float64
	Handling  float64
	Fuel      float64
}

// Total sums the flat fees.
func (f FeeSchedule) Total() float64 {
	return f.Base + f.Insurance + f.Handling + f.Fuel
}

// Tariff is the pricing configuration: ordered weight tiers plus a flat
// fee schedule. Treat it as configuration, not law; rates differ between
// deployments and currencies.
type Tariff struct {
	tiers []Tier
	fees  FeeSchedule
}

// NewTariff validates and creates a tariff. Tiers must be non-empty,
// ascending, contiguous (each tier's max equals the next tier's min),
// start at zero, end open-ended, and carry positive rates.
func NewTariff(tiers []Tier, fees FeeSchedule) (Tariff, error) {
	if len(tiers) == 0 {
		return Tariff{}, errs.NewValueIsRequiredError("tiers")
	}
	if tiers[0].MinKg != 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tiers",
			fmt.Errorf("first tier must start at 0, got %v", tiers[0].MinKg))
	}
	if !math.IsInf(tiers[len(tiers)-1].MaxKg, 1) {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tiers",
			fmt.Errorf("last tier must be open-ended"))
	}
	for i, tier := range tiers {
		if tier.RatePerKg <= 0 {
			return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tiers",
				fmt.Errorf("tier %d rate must be positive, got %v", i, tier.RatePerKg))
		}
		if tier.MaxKg <= tier.MinKg {
			return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tiers",
				fmt.Errorf("tier %d bounds are inverted", i))
		}
		if i > 0 && tiers[i-1].MaxKg != tier.MinKg {
			return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tiers",
				fmt.Errorf("tier %d is not contiguous with its predecessor", i))
		}
	}
	if fees.Base < 0 || fees.Insurance < 0 || fees.Handling < 0 || fees.Fuel < 0 {
		return Tariff{}, errs.NewValueIsInvalidError("fees")
	}

	return Tariff{
		tiers: append([]Tier(nil), tiers...),
		fees:  fees,
	}, nil
}

// DefaultTariff returns the reference Ksh-denominated tariff.
func DefaultTariff() Tariff {
	tariff, err := NewTariff(
		[]Tier{
			{MinKg: 0, MaxKg: 1, RatePerKg: 150, Label: "Light Package (0-1kg)"},
			{MinKg: 1, MaxKg: 5, RatePerKg: 120, Label: "Medium Package (1-5kg)"},
			{MinKg: 5, MaxKg: 20, RatePerKg: 90, Label: "Heavy Package (5-20kg)"},
			{MinKg: 20, MaxKg: math.Inf(1), RatePerKg: 60, Label: "Extra Heavy (20kg+)"},
		},
		FeeSchedule{
			Base:      100,
			Insurance: 50,
			Handling:  75,
			Fuel:      30,
		},
	)
	if err != nil {
		// The reference tariff is statically correct; a failure here is a
		// programming error.
		panic(err)
	}
	return tariff
}

// Tiers returns a copy of the tariff's weight tiers.
func (t Tariff) Tiers() []Tier {
	return append([]Tier(nil), t.tiers...)
}

// Fees returns the flat fee schedule.
func (t Tariff) Fees() FeeSchedule {
	return t.fees
}

// PriceQuote is the full price breakdown for a parcel of a given weight.
type PriceQuote struct {
	WeightKg  float64
	TierLabel string
	RatePerKg float64
	BasePrice float64
	Fees      FeeSchedule
	FeesTotal float64
	Total     float64
}

// Quote computes the price breakdown for a weight. Pure and synchronous;
// call it whenever the weight changes and pin the resulting Total into the
// parcel at submission time.
//
// The weight must be finite and positive; the first tier with
// min < weight <= max wins; total = round2(weight*rate + feesTotal) with
// half-up rounding to two decimals.
func (t Tariff) Quote(weightKg float64) (PriceQuote, error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return PriceQuote{}, errs.NewValueIsInvalidError("weight")
	}
	if weightKg <= 0 {
		return PriceQuote{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}

	for _, tier := range t.tiers {
		if weightKg > tier.MinKg && weightKg <= tier.MaxKg {
			basePrice := weightKg * tier.RatePerKg
			feesTotal := t.fees.Total()
			return PriceQuote{
				WeightKg:  weightKg,
				TierLabel: tier.Label,
				RatePerKg: tier.RatePerKg,
				BasePrice: basePrice,
				Fees:      t.fees,
				FeesTotal: feesTotal,
				Total:     round2(basePrice + feesTotal),
			}, nil
		}
	}

	return PriceQuote{}, fmt.Errorf("%w: weight %v", ErrNoTierMatched, weightKg)
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
