// Package pricing resolves the final catalog price of a favorited product
// from the supplier's base price and the reseller's markup configuration.
package pricing

import (
	"math"

	"tangoshop/internal/domain/entity"
	"tangoshop/internal/errors"
)

// ErrUnresolvedMarkup is returned when a favorite defers to the reseller profile
// but the profile itself carries no concrete markup type.
var ErrUnresolvedMarkup = errors.New("markup resolution produced no concrete markup type")

// ErrUnknownMarkupType is returned when a markup type is neither fixed nor percentage
// after resolution.
var ErrUnknownMarkupType = errors.New("unknown markup type")

// Resolve returns the effective markup for a favorite. A concrete override on the
// favorite wins; otherwise the reseller profile's default applies.
func Resolve(fav *entity.Favorite, profile *entity.ResellerProfile) (entity.MarkupType, float64, error) {
	markupType := fav.MarkupType
	markupValue := fav.MarkupValue
	if !markupType.IsConcrete() {
		markupType = profile.MarkupType
		markupValue = profile.DefaultMarkupValue
	}
	if !markupType.IsConcrete() {
		return "", 0, errors.WithStack(ErrUnresolvedMarkup)
	}

	return markupType, markupValue, nil
}

// FinalPrice applies a concrete markup to a base price and rounds the result
// to two decimals, half away from zero.
func FinalPrice(basePrice float64, markupType entity.MarkupType, markupValue float64) (float64, error) {
	var price float64
	switch markupType {
	case entity.MarkupFixed:
		price = basePrice + markupValue
	case entity.MarkupPercentage:
		price = basePrice * (1 + markupValue/100)
	default:
		return 0, errors.Wrapf(ErrUnknownMarkupType, "markup type %q", markupType)
	}

	return round2(price), nil
}

// FavoritePrice resolves the markup of a favorite against the reseller profile
// and applies it to the product's base price.
func FavoritePrice(fav *entity.Favorite, profile *entity.ResellerProfile, basePrice float64) (float64, error) {
	markupType, markupValue, err := Resolve(fav, profile)
	if err != nil {
		return 0, err
	}

	return FinalPrice(basePrice, markupType, markupValue)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
