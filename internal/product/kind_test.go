package product

import "testing"

func TestIsHeadphoneLike(t *testing.T) {
	tests := []struct {
		name string
		in   *Product
		want bool
	}{
		{"nil product", nil, false},
		{"bluetooth headphones category", &Product{Category: Category{Name: "Tai nghe Bluetooth"}}, true},
		{"english category", &Product{Category: Category{Name: "Wireless Earbuds"}}, true},
		{"accessory upper case", &Product{Category: Category{Name: "PHỤ KIỆN"}}, true},
		{"driverSize spec", &Product{Category: Category{Name: "Khác"}, Specs: map[string]any{"driverSize": "10mm"}}, true},
		{"batteryLife spec", &Product{Specs: map[string]any{"batteryLife": 30}}, true},
		{"plain phone", &Product{Name: "iPhone 15", Category: Category{Name: "Điện thoại"}, Specs: map[string]any{"screen": "6.1"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeadphoneLike(tt.in); got != tt.want {
				t.Errorf("IsHeadphoneLike() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWarranty(t *testing.T) {
	months := 24
	if got := (&Product{WarrantyMonths: &months}).Warranty(); got != 24 {
		t.Errorf("Warranty() = %d, want 24", got)
	}
	if got := (&Product{}).Warranty(); got != DefaultWarrantyMonths {
		t.Errorf("Warranty() = %d, want default", got)
	}
	var p *Product
	if got := p.Warranty(); got != DefaultWarrantyMonths {
		t.Errorf("nil Warranty() = %d, want default", got)
	}
}
