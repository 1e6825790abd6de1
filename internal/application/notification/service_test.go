package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/go-inbox-api/internal/domain"
)

// --- mocks ---

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Create(ctx context.Context, n *domain.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}
func (m *mockNotificationStore) ListByEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	args := m.Called(ctx, email)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationStore) MarkAllRead(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "ann@example.com").
		Return(&domain.User{Name: "Ann", Email: "ann@example.com"}, nil)

	ns := &mockNotificationStore{}
	ns.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserEmail == "ann@example.com" &&
			n.Title == "Welcome" &&
			n.Body == "Glad you joined" &&
			!n.Read
	})).Return("65f0c0ffee0ddba11ad0beef", nil)

	svc := NewService(ns, us)
	id, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Email: "ann@example.com",
		Title: "Welcome",
		Body:  "Glad you joined",
	})

	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee0ddba11ad0beef", id)
	ns.AssertExpectations(t)
}

func TestCreate_UnknownUser(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	ns := &mockNotificationStore{}

	svc := NewService(ns, us)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Email: "ghost@example.com",
		Title: "Hello",
		Body:  "World",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DatabaseUnavailable(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "ann@example.com").Return(nil, domain.ErrUnavailable)

	svc := NewService(&mockNotificationStore{}, us)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Email: "ann@example.com",
		Title: "Hello",
		Body:  "World",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

// --- List ---

func TestList_NewestFirstInWireForm(t *testing.T) {
	newer := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	ns := &mockNotificationStore{}
	ns.On("ListByEmail", mock.Anything, "ann@example.com").Return([]domain.Notification{
		{
			ID:        oid(t, "65f0c0ffee0ddba11ad0be02"),
			UserEmail: "ann@example.com",
			Title:     "Second",
			Body:      "b2",
			Read:      false,
			CreatedAt: &newer,
		},
		{
			ID:        oid(t, "65f0c0ffee0ddba11ad0be01"),
			UserEmail: "ann@example.com",
			Title:     "First",
			Body:      "b1",
			Read:      true,
			CreatedAt: &older,
		},
	}, nil)

	svc := NewService(ns, &mockUserStore{})
	items, err := svc.List(context.Background(), "ann@example.com")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "65f0c0ffee0ddba11ad0be02", items[0].ID)
	assert.Equal(t, "Second", items[0].Title)
	assert.False(t, items[0].Read)
	require.NotNil(t, items[0].CreatedAt)
	assert.Equal(t, "2026-03-02T09:30:00Z", *items[0].CreatedAt)
	assert.Equal(t, "First", items[1].Title)
	assert.True(t, items[1].Read)
}

func TestList_MissingTimestampRendersNull(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("ListByEmail", mock.Anything, "ann@example.com").Return([]domain.Notification{
		{ID: oid(t, "65f0c0ffee0ddba11ad0be03"), Title: "Imported", Body: "no timestamp"},
	}, nil)

	svc := NewService(ns, &mockUserStore{})
	items, err := svc.List(context.Background(), "ann@example.com")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].CreatedAt)
}

func TestList_UnknownEmailIsEmpty(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("ListByEmail", mock.Anything, "ghost@example.com").Return([]domain.Notification{}, nil)

	svc := NewService(ns, &mockUserStore{})
	items, err := svc.List(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestList_DatabaseUnavailable(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("ListByEmail", mock.Anything, "ann@example.com").Return(nil, domain.ErrUnavailable)

	svc := NewService(ns, &mockUserStore{})
	_, err := svc.List(context.Background(), "ann@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}

// --- MarkAllRead ---

func TestMarkAllRead_Idempotent(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("MarkAllRead", mock.Anything, "ann@example.com").Return(int64(3), nil).Once()
	ns.On("MarkAllRead", mock.Anything, "ann@example.com").Return(int64(0), nil).Once()

	svc := NewService(ns, &mockUserStore{})
	require.NoError(t, svc.MarkAllRead(context.Background(), "ann@example.com"))
	require.NoError(t, svc.MarkAllRead(context.Background(), "ann@example.com"))
	ns.AssertExpectations(t)
}

func TestMarkAllRead_DatabaseUnavailable(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("MarkAllRead", mock.Anything, "ann@example.com").Return(int64(0), domain.ErrUnavailable)

	svc := NewService(ns, &mockUserStore{})
	err := svc.MarkAllRead(context.Background(), "ann@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}
