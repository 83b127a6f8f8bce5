package product

import "strings"

var headphoneCategories = []string{
	"tai nghe",
	"headphone",
	"earphone",
	"earbud",
	"phụ kiện",
}

var headphoneSpecKeys = []string{
	"connectionType",
	"driverSize",
	"impedance",
	"frequency",
	"noiseReduction",
	"batteryLife",
}

// IsHeadphoneLike reports whether p is a headphone or accessory rather than a phone.
// A nil product is displayed phone-style.
func IsHeadphoneLike(p *Product) bool {
	if p == nil {
		return false
	}
	category := strings.ToLower(p.Category.Name)
	for _, kw := range headphoneCategories {
		if strings.Contains(category, kw) {
			return true
		}
	}
	for _, k := range headphoneSpecKeys {
		if _, ok := p.Specs[k]; ok {
			return true
		}
	}
	return false
}
