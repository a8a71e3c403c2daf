package entity

// OnboardingState is a host's progress towards a payout capable processor account
type OnboardingState string

const (
	StateRegistered             OnboardingState = "registered"
	StateProfileComplete        OnboardingState = "profile_complete"
	StateProcessorAccountLinked OnboardingState = "processor_account_linked"
	StateOnboarded              OnboardingState = "onboarded"
)

var onboardingOrder = map[OnboardingState]int{
	StateRegistered:             0,
	StateProfileComplete:        1,
	StateProcessorAccountLinked: 2,
	StateOnboarded:              3,
}

// ProjectOnboardingState computes the onboarding state of a host.
// The account reference and the completion flag are only ever set, never cleared,
// so the projection can only move forward.
func ProjectOnboardingState(h *Host) OnboardingState {
	switch {
	case h.HasProcessorAccount() && h.OnboardingComplete:
		return StateOnboarded
	case h.HasProcessorAccount():
		return StateProcessorAccountLinked
	case h.ProfileComplete():
		return StateProfileComplete
	default:
		return StateRegistered
	}
}

// AtLeast reports whether s has reached other in the forward order
func (s OnboardingState) AtLeast(other OnboardingState) bool {
	return onboardingOrder[s] >= onboardingOrder[other]
}
