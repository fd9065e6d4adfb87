package model

// AccountKind classifies the accounts a customer can hold in a session.
type AccountKind string

const (
	AccountKindSavings AccountKind = "savings"
	AccountKindCurrent AccountKind = "current"
	AccountKindFixed   AccountKind = "fixed"
)

// AccountKinds lists every kind in the order they are opened in a session.
var AccountKinds = []AccountKind{AccountKindSavings, AccountKindCurrent, AccountKindFixed}

// ParseAccountKind returns the kind named by s, if any.
func ParseAccountKind(s string) (AccountKind, bool) {
	for _, k := range AccountKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Title returns the display name, e.g. "Savings".
func (k AccountKind) Title() string {
	switch k {
	case AccountKindSavings:
		return "Savings"
	case AccountKindCurrent:
		return "Current"
	case AccountKindFixed:
		return "Fixed"
	default:
		return string(k)
	}
}
