package narrative

import (
	"fmt"

	"github.com/castlewood/finsight/internal/model"
)

// Fallback produces a deterministic, templated explanation for a decision
// summary. The engine uses it whenever no narrator is configured or the
// provider call fails, so a verdict always carries usable reasoning.
func Fallback(summary Summary) string {
	f := summary.Figures

	switch summary.Type {
	case model.DecisionTrip:
		if summary.Affordable {
			return fmt.Sprintf(
				"The %.0f trip fits: it stays below %.0f (%.0f%% of your monthly salary) and your savings of %.0f exceed the %.0f safety reserve.",
				f["trip_cost"], f["salary_threshold"], f["salary_fraction"]*100, f["current_savings"], f["required_savings"])
		}
		return fmt.Sprintf(
			"A %.0f trip does not fit safely against a %.0f monthly salary. Saving %.0f per month would cover it in %.0f months.",
			f["trip_cost"], f["monthly_salary"], f["alternative_monthly_savings"], f["alternative_horizon_months"])

	case model.DecisionPurchase:
		if summary.Affordable {
			return fmt.Sprintf(
				"The %.0f purchase stays below %.0f (%.0f%% of your monthly salary), so it is within reach as a one-off expense.",
				f["purchase_cost"], f["salary_threshold"], f["salary_fraction"]*100)
		}
		return fmt.Sprintf(
			"At %.0f this purchase exceeds the %.0f threshold for one-off spending. Saving %.0f per month gets you there in %.0f months.",
			f["purchase_cost"], f["salary_threshold"], f["alternative_monthly_savings"], f["alternative_horizon_months"])

	case model.DecisionSubscription:
		if summary.Affordable {
			return fmt.Sprintf(
				"Adding this subscription brings recurring spend to %.2f per month, still inside the %.2f cap.",
				f["new_total_monthly"], f["subscription_cap"])
		}
		return fmt.Sprintf(
			"Adding this subscription pushes recurring spend to %.2f per month, past the %.2f cap. Consider dropping an existing subscription first.",
			f["new_total_monthly"], f["subscription_cap"])

	case model.DecisionHousing:
		if summary.Affordable {
			return fmt.Sprintf(
				"Buying works out cheaper: an estimated %.0f per month against %.0f in rent, with an adequate down payment.",
				f["monthly_buy_cost"], f["monthly_rent"])
		}
		return fmt.Sprintf(
			"Renting at %.0f per month is the better option right now; buying would cost about %.0f per month.",
			f["monthly_rent"], f["monthly_buy_cost"])

	case model.DecisionCareerMove:
		if summary.Affordable {
			return fmt.Sprintf(
				"The move improves your position: disposable income goes from %.0f to %.0f per month.",
				f["current_disposable"], f["new_disposable"])
		}
		return fmt.Sprintf(
			"The move reduces disposable income from %.0f to %.0f per month once cost-of-living changes are counted. Proceed only if the non-financial upside justifies it.",
			f["current_disposable"], f["new_disposable"])
	}

	if summary.Affordable {
		return "This fits within your current budget."
	}
	return "This does not fit within your current budget; build savings capacity first."
}
