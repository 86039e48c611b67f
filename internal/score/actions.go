package score

import "github.com/namelens/namelens/internal/model"

// Urgency labels attached to next actions
const (
	UrgencyNow          = "now"
	UrgencySoon         = "soon"
	UrgencyThisWeek     = "this-week"
	UrgencyConsider     = "consider"
	UrgencyBeforeLaunch = "before-launch"
)

// nextActions returns the tier-specific coaching entries. The reservation
// URL is caller-supplied and only attached to the claim actions.
func nextActions(tier model.Tier, reservationURL string) []model.NextAction {
	switch tier {
	case model.TierGreen:
		return []model.NextAction{
			{Action: "claim-now", Urgency: UrgencyNow, URL: reservationURL},
			{Action: "register-domain", Urgency: UrgencySoon, URL: reservationURL},
		}
	case model.TierYellow:
		return []model.NextAction{
			{Action: "recheck", Urgency: UrgencyThisWeek},
			{Action: "try-alternative", Urgency: UrgencyConsider},
		}
	default:
		return []model.NextAction{
			{Action: "try-alternative", Urgency: UrgencyNow},
			{Action: "consult-counsel", Urgency: UrgencyBeforeLaunch},
		}
	}
}
