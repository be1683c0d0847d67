package models

// Допустимые значения пола в анкете.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// ProfileUpdate содержит частичное обновление анкеты пользователя.
// nil-поля не трогаются.
type ProfileUpdate struct {
	Name       *string
	Gender     *string
	Age        *int
	Location   *string
	Height     *float64
	Weight     *float64
	GoalWeight *float64
	Goals      []string
}
