package enums

import "fmt"

// ShopLocation distinguishes domestic shops from international ones.
type ShopLocation string

const (
	ShopLocationLocal         ShopLocation = "local"
	ShopLocationInternational ShopLocation = "international"
)

func (l ShopLocation) IsValid() bool {
	return l == ShopLocationLocal || l == ShopLocationInternational
}

func (l ShopLocation) String() string { return string(l) }

// ParseShopLocation validates a raw string against the known locations.
func ParseShopLocation(value string) (ShopLocation, error) {
	loc := ShopLocation(value)
	if !loc.IsValid() {
		return "", fmt.Errorf("invalid shop location %q", value)
	}
	return loc, nil
}
