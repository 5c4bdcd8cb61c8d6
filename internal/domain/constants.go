package domain

import "errors"

var (
	ErrUnknownStatus = errors.New("domain: unknown booking status")
	ErrUnknownAction = errors.New("domain: unknown booking action")
	ErrUnknownFilter = errors.New("domain: unknown status filter")
)

// DefaultConversationLimit лимит диалогов в месяц, если бизнес его не прислал
const DefaultConversationLimit = 50

// PlanFree тариф, для которого показывается предложение перейти на Pro
const PlanFree = "free"

// Форматы отображения даты и времени бронирования
const (
	DisplayDateFormat = "Jan 02, 2006"
	DisplayTimeFormat = "03:04 PM"
)

// BusinessType тип бизнеса, выбираемый при регистрации
type BusinessType struct {
	Value string
	Label string
}

// BusinessTypes в порядке отображения; первый используется по умолчанию
var BusinessTypes = []BusinessType{
	{Value: "salon", Label: "Salon & Spa"},
	{Value: "gym", Label: "Gym & Fitness"},
	{Value: "clinic", Label: "Medical Clinic"},
	{Value: "restaurant", Label: "Restaurant"},
	{Value: "dental", Label: "Dental Clinic"},
}

// IsKnownBusinessType returns true if v is one of BusinessTypes
func IsKnownBusinessType(v string) bool {
	for _, bt := range BusinessTypes {
		if bt.Value == v {
			return true
		}
	}
	return false
}
