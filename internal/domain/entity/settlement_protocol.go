package entity

import "strings"

// SettlementProtocol selects how funds reach a host's processor account
type SettlementProtocol string

const (
	// DirectSettlement is one destination charge made on behalf of the host account
	DirectSettlement SettlementProtocol = "direct"
	// IndirectSettlement is a platform charge followed by a transfer in the same transfer group
	IndirectSettlement SettlementProtocol = "indirect"
)

// fullServiceCountries are covered by a full service agreement with the processor
var fullServiceCountries = map[string]struct{}{
	"JP": {},
}

// ProtocolForCountry returns the settlement protocol used for hosts in country
func ProtocolForCountry(country string) SettlementProtocol {
	if _, ok := fullServiceCountries[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return DirectSettlement
	}
	return IndirectSettlement
}

// IsValid reports whether p is one of the known protocols
func (p SettlementProtocol) IsValid() bool {
	return p == DirectSettlement || p == IndirectSettlement
}

// ProcessorCalls is the number of processor calls a full settlement takes
func (p SettlementProtocol) ProcessorCalls() int {
	if p == DirectSettlement {
		return 1
	}
	return 2
}
