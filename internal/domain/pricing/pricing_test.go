package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tangoshop/internal/domain/entity"
)

func TestFinalPrice_Percentage(t *testing.T) {
	price, err := FinalPrice(15000, entity.MarkupPercentage, 10)
	assert.NoError(t, err)
	assert.InDelta(t, 16500.0, price, 0.001)

	// Fractional rates round to two decimals
	price, err = FinalPrice(99.99, entity.MarkupPercentage, 12.5)
	assert.NoError(t, err)
	assert.InDelta(t, 112.49, price, 0.001)
}

func TestFinalPrice_Fixed(t *testing.T) {
	price, err := FinalPrice(150, entity.MarkupFixed, 150)
	assert.NoError(t, err)
	assert.InDelta(t, 300.0, price, 0.001)

	price, err = FinalPrice(10.004, entity.MarkupFixed, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 10.0, price, 0.001)
}

func TestFinalPrice_ZeroMarkup(t *testing.T) {
	price, err := FinalPrice(1234.56, entity.MarkupPercentage, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 1234.56, price, 0.001)
}

func TestFinalPrice_UnknownType(t *testing.T) {
	_, err := FinalPrice(100, entity.MarkupDefault, 10)
	assert.ErrorIs(t, err, ErrUnknownMarkupType)

	_, err = FinalPrice(100, entity.MarkupType("bogus"), 10)
	assert.ErrorIs(t, err, ErrUnknownMarkupType)
}

func TestResolve_FavoriteOverrideWins(t *testing.T) {
	fav := &entity.Favorite{MarkupType: entity.MarkupFixed, MarkupValue: 500}
	profile := &entity.ResellerProfile{MarkupType: entity.MarkupPercentage, DefaultMarkupValue: 30}

	markupType, markupValue, err := Resolve(fav, profile)
	assert.NoError(t, err)
	assert.Equal(t, entity.MarkupFixed, markupType)
	assert.InDelta(t, 500.0, markupValue, 0.001)
}

func TestResolve_DefaultFallsBackToProfile(t *testing.T) {
	fav := &entity.Favorite{MarkupType: entity.MarkupDefault, MarkupValue: 999}
	profile := &entity.ResellerProfile{MarkupType: entity.MarkupPercentage, DefaultMarkupValue: 30}

	markupType, markupValue, err := Resolve(fav, profile)
	assert.NoError(t, err)
	assert.Equal(t, entity.MarkupPercentage, markupType)
	// The favorite's value is ignored when falling back
	assert.InDelta(t, 30.0, markupValue, 0.001)
}

func TestResolve_UnresolvedProfile(t *testing.T) {
	fav := &entity.Favorite{MarkupType: entity.MarkupDefault}
	profile := &entity.ResellerProfile{MarkupType: entity.MarkupDefault}

	_, _, err := Resolve(fav, profile)
	assert.ErrorIs(t, err, ErrUnresolvedMarkup)
}

func TestFavoritePrice(t *testing.T) {
	profile := &entity.ResellerProfile{MarkupType: entity.MarkupPercentage, DefaultMarkupValue: 30}

	// Reseller default applied
	fav := &entity.Favorite{MarkupType: entity.MarkupDefault}
	price, err := FavoritePrice(fav, profile, 1000)
	assert.NoError(t, err)
	assert.InDelta(t, 1300.0, price, 0.001)

	// Override applied
	fav = &entity.Favorite{MarkupType: entity.MarkupFixed, MarkupValue: 150}
	price, err = FavoritePrice(fav, profile, 150)
	assert.NoError(t, err)
	assert.InDelta(t, 300.0, price, 0.001)
}
