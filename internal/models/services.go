package models

import (
	"context"

	"github.com/Renal37/canteen-admin/internal/utils"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Login(ctx context.Context, credentials Credentials) error

	Logout()

	Session() SessionInfo
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	Orders(filter StatusFilter, search string) ([]Order, SyncState)
}

//go:generate mockgen -destination=mocks/mock_transition.go . TransitionService
type TransitionService interface {
	Submit(orderID string, target OrderStatus) error
}

//go:generate mockgen -destination=mocks/mock_revenue.go . RevenueService
type RevenueService interface {
	DailySummary(ctx context.Context, date utils.LocalDate) (*DailySummary, error)
}

//go:generate mockgen -destination=mocks/mock_feedback.go . FeedbackService
type FeedbackService interface {
	List(ctx context.Context) ([]Feedback, error)

	MarkRead(ctx context.Context, feedbackID string) error

	MarkAllRead(ctx context.Context) error
}

//go:generate mockgen -destination=mocks/mock_canteen.go . CanteenService
type CanteenService interface {
	Status() CanteenStatus

	Toggle(ctx context.Context) (CanteenStatus, error)
}

//go:generate mockgen -destination=mocks/mock_notification.go . NotificationService
type NotificationService interface {
	Drain() []Notification
}

//go:generate mockgen -destination=mocks/mock_journal.go . JournalService
type JournalService interface {
	FindTransitions(ctx context.Context, orderID string, limit int) ([]TransitionRecord, error)
}

//go:generate mockgen -destination=mocks/mock_menu.go . MenuService
type MenuService interface {
	List(ctx context.Context, category, search string) ([]MenuItem, error)

	Item(ctx context.Context, itemID string) (*MenuItem, error)

	Create(ctx context.Context, input MenuItemInput, image *Upload) error

	Update(ctx context.Context, itemID string, input MenuItemInput, image *Upload) error

	Delete(ctx context.Context, itemID string) error
}

//go:generate mockgen -destination=mocks/mock_advertisement.go . AdvertisementService
type AdvertisementService interface {
	List(ctx context.Context) ([]Advertisement, error)

	Upload(ctx context.Context, image Upload) error

	Toggle(ctx context.Context, adID string) error

	Delete(ctx context.Context, adID string) error
}

//go:generate mockgen -destination=mocks/mock_service_hours.go . ServiceHoursService
type ServiceHoursService interface {
	Hours(ctx context.Context) ServiceHours

	Update(ctx context.Context, hours ServiceHours) (ServiceHours, error)

	Reset(ctx context.Context) (ServiceHours, error)
}
