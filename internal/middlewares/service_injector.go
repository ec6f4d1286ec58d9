package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/canteen-admin/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	OrderServiceKey
	TransitionServiceKey
	RevenueServiceKey
	FeedbackServiceKey
	CanteenServiceKey
	NotificationServiceKey
	JournalServiceKey
	MenuServiceKey
	AdvertisementServiceKey
	ServiceHoursServiceKey
)

// Services набор сервисов, доступных обработчикам консоли.
// Journal может быть nil, если журнал переходов не настроен.
type Services struct {
	Auth         models.AuthService
	Orders       models.OrderService
	Transitions  models.TransitionService
	Revenue      models.RevenueService
	Feedback     models.FeedbackService
	Canteen      models.CanteenService
	Notification models.NotificationService
	Journal      models.JournalService
	Menu         models.MenuService
	Ads          models.AdvertisementService
	ServiceHours models.ServiceHoursService
}

func ServiceInjectorMiddleware(services Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, services.Auth)
			ctx = context.WithValue(ctx, OrderServiceKey, services.Orders)
			ctx = context.WithValue(ctx, TransitionServiceKey, services.Transitions)
			ctx = context.WithValue(ctx, RevenueServiceKey, services.Revenue)
			ctx = context.WithValue(ctx, FeedbackServiceKey, services.Feedback)
			ctx = context.WithValue(ctx, CanteenServiceKey, services.Canteen)
			ctx = context.WithValue(ctx, NotificationServiceKey, services.Notification)
			ctx = context.WithValue(ctx, MenuServiceKey, services.Menu)
			ctx = context.WithValue(ctx, AdvertisementServiceKey, services.Ads)
			ctx = context.WithValue(ctx, ServiceHoursServiceKey, services.ServiceHours)
			if services.Journal != nil {
				ctx = context.WithValue(ctx, JournalServiceKey, services.Journal)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}

// LookupServiceFromContext как GetServiceFromContext, но для необязательных сервисов: ответ не пишется.
func LookupServiceFromContext[Service interface{}](r *http.Request, serviceKey key) (Service, bool) {
	foundService, ok := r.Context().Value(serviceKey).(Service)
	return foundService, ok
}
