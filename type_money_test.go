package simulador

import "testing"

func TestMoney_Number(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(0), "0.00"},
		{USD(16288.946267774414), "16,288.95"},
		{USD(1234567.891), "1,234,567.89"},
		{BRL(93000), "93,000.00"},
		{USD(0.005), "0.01"},
		{USD(-1500.5), "-1,500.50"},
	}
	for _, tc := range testCases {
		if got := tc.m.Number(); got != tc.want {
			t.Errorf("%v.Number() = %q, want %q", tc.m.value, got, tc.want)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	m := USD(1102.0000000000002)
	if got := m.Float(); got != 1102 {
		t.Errorf("Float() = %v, want 1102", got)
	}
	if got := m.Cents(); got != 110200 {
		t.Errorf("Cents() = %v, want 110200", got)
	}
	if got := USD(0.004).Cents(); got != 0 {
		t.Errorf("USD(0.004).Cents() = %v, want 0", got)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(1234.567), "$1,234.57"},
		{BRL(1234.56), "R$1.234,56"},
		{BRL(92073.62596564953), "R$92.073,63"},
		{BRL(0), "R$0,00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m.value, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := PercentOf(0.05).String(); got != "5.00%" {
		t.Errorf("PercentOf(0.05).String() = %q, want %q", got, "5.00%")
	}
	if got := Percent(12).Fraction(); got != 0.12 {
		t.Errorf("Fraction() = %v, want 0.12", got)
	}
	if got := Percent(7.25).String(); got != "7.25%" {
		t.Errorf("String() = %q, want %q", got, "7.25%")
	}
}
