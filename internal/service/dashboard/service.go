package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// Client интерфейс клиента API для главной страницы
type Client interface {
	GetBusiness(ctx context.Context, token string) (*domain.Business, error)
	ListUpcomingBookings(ctx context.Context, token string) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Stats показатели главной страницы
type Stats struct {
	BusinessName           string
	BusinessType           string
	Plan                   string
	UpcomingBookings       int
	ActiveServices         int
	StaffCount             int
	ConversationsThisMonth int
	ConversationLimit      int
	UsagePercent           float64
	WhatsappConnected      bool
	Loaded                 bool
}

// ShowUpgrade returns true if the business is on the free plan
func (s Stats) ShowUpgrade() bool {
	return s.Plan == domain.PlanFree
}

// Service сервис главной страницы
type Service struct {
	client Client
	logger Logger
}

func NewService(client Client, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Stats загружает профиль бизнеса и ближайшие записи параллельно
// Ошибка любого запроса дает нулевые показатели
func (s *Service) Stats(ctx context.Context, token string) (Stats, error) {
	var (
		business *domain.Business
		upcoming []domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		business, err = s.client.GetBusiness(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.client.ListUpcomingBookings(gctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Stats: failed to load dashboard: %v", err)
		return Stats{ConversationLimit: domain.DefaultConversationLimit}, fmt.Errorf("dashboard: load stats: %w", err)
	}

	stats := Stats{
		BusinessName:           business.Name,
		BusinessType:           business.BusinessType,
		Plan:                   business.Plan,
		UpcomingBookings:       len(upcoming),
		ActiveServices:         len(business.Services),
		StaffCount:             len(business.Staff),
		ConversationsThisMonth: business.MonthlyConversations,
		ConversationLimit:      business.EffectiveConversationLimit(),
		UsagePercent:           business.UsagePercent(),
		WhatsappConnected:      business.WhatsappConnected,
		Loaded:                 true,
	}
	s.logger.Info("Stats: upcoming=%d, services=%d, conversations=%d", stats.UpcomingBookings, stats.ActiveServices, stats.ConversationsThisMonth)
	return stats, nil
}
