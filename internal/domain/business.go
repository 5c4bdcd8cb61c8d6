package domain

import "github.com/shopspring/decimal"

// Service услуга бизнеса
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Duration    int             `json:"duration"` // минуты
	Price       decimal.Decimal `json:"price"`
}

// GetID реализует catalog.Entity
func (s Service) GetID() string { return s.ID }

// Staff сотрудник бизнеса
type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	// NylasGrantID выставляется бэкендом после подключения календаря
	NylasGrantID string `json:"nylasGrantId,omitempty"`
}

func (s Staff) GetID() string { return s.ID }

// CalendarConnected returns true if the staff member has a connected calendar
func (s Staff) CalendarConnected() bool {
	return s.NylasGrantID != ""
}

// Business профиль бизнеса оператора
type Business struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	BusinessType         string    `json:"businessType"`
	Plan                 string    `json:"plan"`
	Services             []Service `json:"services,omitempty"`
	Staff                []Staff   `json:"staff,omitempty"`
	MonthlyConversations int       `json:"monthlyConversations"`
	ConversationLimit    int       `json:"conversationLimit"`
	WhatsappConnected    bool      `json:"whatsappConnected"`
}

// EffectiveConversationLimit лимит диалогов с учетом значения по умолчанию
func (b *Business) EffectiveConversationLimit() int {
	if b.ConversationLimit <= 0 {
		return DefaultConversationLimit
	}
	return b.ConversationLimit
}

// UsagePercent доля использованного лимита, не больше 100
func (b *Business) UsagePercent() float64 {
	pct := float64(b.MonthlyConversations) / float64(b.EffectiveConversationLimit()) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// User профиль оператора, сохраняемый в сессии после входа
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	BusinessID string `json:"businessId,omitempty"`
}
