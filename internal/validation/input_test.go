package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"User.Name+tag@sub.example.org",
		"a@b.co",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("email %q должен приниматься: %v", email, err)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"@example.com",
		"user@",
		"user@nodot",
		"user name@example.com",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("email %q должен отклоняться", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("password123"); err != nil {
		t.Errorf("нормальный пароль должен приниматься: %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Errorf("короткий пароль должен отклоняться")
	}

	long := make([]byte, MaxPasswordLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidatePassword(string(long)); err == nil {
		t.Errorf("пароль длиннее %d байт должен отклоняться", MaxPasswordLength)
	}
}

func TestValidateCode(t *testing.T) {
	valid := []string{"000000", "123456", "999999"}
	for _, code := range valid {
		if err := ValidateCode(code); err != nil {
			t.Errorf("код %q должен приниматься: %v", code, err)
		}
	}

	invalid := []string{"", "12345", "1234567", "12a456", " 123456"}
	for _, code := range invalid {
		if err := ValidateCode(code); err == nil {
			t.Errorf("код %q должен отклоняться", code)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Иван"); err != nil {
		t.Errorf("имя должно приниматься: %v", err)
	}
	if err := ValidateName("   "); err == nil {
		t.Errorf("пустое имя должно отклоняться")
	}
}
