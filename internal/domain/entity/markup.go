// Package entity contains the core business objects of the project.
package entity

// MarkupType identifies how a reseller's margin is applied over a product's base price.
type MarkupType string

const (
	// MarkupDefault defers to the reseller's profile-level markup configuration.
	MarkupDefault MarkupType = "default"
	// MarkupPercentage adds a percentage of the base price.
	MarkupPercentage MarkupType = "percentage"
	// MarkupFixed adds a fixed amount to the base price.
	MarkupFixed MarkupType = "fixed"
)

// String returns the string representation of the MarkupType.
func (m MarkupType) String() string {
	return string(m)
}

// IsValid checks if the MarkupType is a valid value.
func (m MarkupType) IsValid() bool {
	switch m {
	case MarkupDefault, MarkupPercentage, MarkupFixed:
		return true
	default:
		return false
	}
}

// IsConcrete reports whether the markup type resolves a price by itself,
// without falling back to the reseller's profile configuration.
func (m MarkupType) IsConcrete() bool {
	return m == MarkupPercentage || m == MarkupFixed
}
