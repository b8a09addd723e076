package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+34666111222",
		"+34 666 111 222",
		"+1 (555) 123-4567",
		"34912345678",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("%q should be accepted", phone)
		}
	}

	invalid := []string{
		"not-a-phone",
		"+0 123",
		"",
		"+34 666 111 222 333 444 555",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("%q should be rejected", phone)
		}
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:00", "18:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeOfDay(s) {
			t.Errorf("%q should be accepted", s)
		}
	}

	invalid := []string{"24:00", "9:00", "09:60", "9am", "", "09:00:00"}
	for _, s := range invalid {
		if ValidateTimeOfDay(s) {
			t.Errorf("%q should be rejected", s)
		}
	}
}
