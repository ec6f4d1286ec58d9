package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/canteen-admin/internal/models"
)

type stubAdBackend struct {
	mu        sync.Mutex
	ads       []models.Advertisement
	writeErr  error
	listCalls int

	// afterList вызывается, когда ответ списка уже собран
	afterList func(call int)
	// beforeWrite вызывается до того, как бэкенд применит изменение
	beforeWrite func()
}

func (s *stubAdBackend) ListAdvertisements(context.Context) ([]models.Advertisement, error) {
	s.mu.Lock()
	s.listCalls++
	call := s.listCalls
	result := append([]models.Advertisement(nil), s.ads...)
	hook := s.afterList
	s.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	return result, nil
}

func (s *stubAdBackend) write(apply func()) error {
	s.mu.Lock()
	hook := s.beforeWrite
	s.mu.Unlock()

	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	apply()
	return nil
}

func (s *stubAdBackend) CreateAdvertisement(_ context.Context, image models.Upload) error {
	return s.write(func() {
		s.ads = append(s.ads, models.Advertisement{ID: "new", ImageURL: "/uploads/" + image.Filename})
	})
}

func (s *stubAdBackend) ToggleAdvertisement(_ context.Context, adID string) error {
	return s.write(func() {
		for i := range s.ads {
			if s.ads[i].ID == adID {
				s.ads[i].IsActive = !s.ads[i].IsActive
			}
		}
	})
}

func (s *stubAdBackend) DeleteAdvertisement(_ context.Context, adID string) error {
	return s.write(func() {
		kept := s.ads[:0]
		for _, ad := range s.ads {
			if ad.ID != adID {
				kept = append(kept, ad)
			}
		}
		s.ads = kept
	})
}

func testAds() []models.Advertisement {
	return []models.Advertisement{
		{ID: "a1", ImageURL: "/uploads/a1.png", IsActive: true},
		{ID: "a2", ImageURL: "/uploads/a2.png", IsActive: false},
	}
}

func TestAdvertisementService_Toggle(t *testing.T) {
	stub := &stubAdBackend{ads: testAds()}
	as := NewAdvertisementService(stub)
	require.NoError(t, as.Refresh(context.Background()))

	var seen []models.Advertisement
	stub.beforeWrite = func() {
		seen, _ = as.List(context.Background())
	}

	require.NoError(t, as.Toggle(context.Background(), "a2"))

	assert.True(t, seen[1].IsActive, "баннер включается до ответа бэкенда")

	ads, _ := as.List(context.Background())
	assert.True(t, ads[1].IsActive)
	assert.Equal(t, 2, stub.listCalls)
}

func TestAdvertisementService_EarlierRefreshDoesNotUndoToggle(t *testing.T) {
	stub := &stubAdBackend{ads: testAds()}
	as := NewAdvertisementService(stub)
	require.NoError(t, as.Refresh(context.Background()))

	entered := make(chan struct{})
	release := make(chan struct{})
	stub.afterList = func(call int) {
		if call == 2 {
			close(entered)
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- as.Refresh(context.Background())
	}()
	<-entered

	require.NoError(t, as.Toggle(context.Background(), "a1"))

	close(release)
	require.NoError(t, <-done)

	ads, _ := as.List(context.Background())
	assert.False(t, ads[0].IsActive, "ответ, собранный до переключения, не включает баннер обратно")
}

func TestAdvertisementService_FailedChangesAreRestored(t *testing.T) {
	tests := []struct {
		name   string
		change func(as *AdvertisementService) error
	}{
		{name: "Переключение", change: func(as *AdvertisementService) error { return as.Toggle(context.Background(), "a1") }},
		{name: "Удаление", change: func(as *AdvertisementService) error { return as.Delete(context.Background(), "a1") }},
		{name: "Загрузка", change: func(as *AdvertisementService) error {
			return as.Upload(context.Background(), models.Upload{Filename: "a3.png", Content: strings.NewReader("png")})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAdBackend{ads: testAds(), writeErr: errors.New("boom")}
			as := NewAdvertisementService(stub)
			require.NoError(t, as.Refresh(context.Background()))

			require.Error(t, tt.change(as))

			ads, _ := as.List(context.Background())
			assert.Equal(t, testAds(), ads)
		})
	}
}

func TestAdvertisementService_UploadAndDelete(t *testing.T) {
	stub := &stubAdBackend{ads: testAds()}
	as := NewAdvertisementService(stub)

	require.NoError(t, as.Upload(context.Background(), models.Upload{Filename: "a3.png", Content: strings.NewReader("png")}))
	ads, _ := as.List(context.Background())
	require.Len(t, ads, 3)
	assert.Equal(t, "/uploads/a3.png", ads[2].ImageURL)

	require.NoError(t, as.Delete(context.Background(), "a1"))
	ads, _ = as.List(context.Background())
	assert.Len(t, ads, 2)
	assert.Equal(t, "a2", ads[0].ID)
}
