package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/foodoscope/foodoscope-backend/internal/models"
)

// ValidateGender проверяет значение пола из анкеты.
func ValidateGender(gender string) error {
	if gender != models.GenderMale && gender != models.GenderFemale {
		return fmt.Errorf("пол должен быть %s или %s", models.GenderMale, models.GenderFemale)
	}
	return nil
}

// ValidateAge проверяет возраст.
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("возраст должен быть от %d до %d", MinAge, MaxAge)
	}
	return nil
}

// ValidatePositive проверяет, что числовое поле анкеты положительное.
func ValidatePositive(fieldName string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s должен быть положительным числом", fieldName)
	}
	return nil
}

// ValidateLocation проверяет местоположение.
func ValidateLocation(location string) error {
	if utf8.RuneCountInString(strings.TrimSpace(location)) > MaxLocationLength {
		return fmt.Errorf("местоположение должно быть не более %d символов", MaxLocationLength)
	}
	return nil
}

// ValidateGoals проверяет список целей.
func ValidateGoals(goals []string) error {
	if len(goals) > MaxGoalsCount {
		return fmt.Errorf("количество целей не может превышать %d", MaxGoalsCount)
	}
	for _, goal := range goals {
		goal = strings.TrimSpace(goal)
		if goal == "" {
			return fmt.Errorf("цель не может быть пустой")
		}
		if utf8.RuneCountInString(goal) > MaxGoalLength {
			return fmt.Errorf("цель не может быть длиннее %d символов", MaxGoalLength)
		}
	}
	return nil
}
