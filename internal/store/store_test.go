package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"velodesk/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return New(db)
}

func seedUser(t *testing.T, st *Store, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Email:        string(role) + "@velodesk.test",
		PasswordHash: "x",
		Name:         "Test " + string(role),
		Role:         role,
		BranchName:   "Branch A",
		IsActive:     true,
	}
	require.NoError(t, st.CreateUser(context.Background(), u))
	return u
}

func TestUserLookup(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	u := seedUser(t, st, models.RoleManager)

	got, err := st.UserByEmail(ctx, "manager@velodesk.test")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	missing, err := st.UserByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMechanicLookup(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	none, err := st.Mechanic(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	m := seedUser(t, st, models.RoleMechanic)
	got, err := st.Mechanic(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.ID, got.ID)
}

func TestBikeTypeSoftDelete(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	bt := &models.BikeType{Name: "City bike", NameFr: "Vélo de ville", Price: 4500, IsActive: true}
	require.NoError(t, st.CreateBikeType(ctx, bt))

	active, err := st.BikeTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, st.DeleteBikeType(ctx, bt.ID))

	active, err = st.BikeTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// deactivated rows stay reachable by id so old orders still resolve
	got, err := st.BikeTypeByID(ctx, bt.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestOrderStatusStampsCompletedAt(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	mgr := seedUser(t, st, models.RoleManager)

	o := &models.Order{
		OrderNumber: "ORD-20260301-0001",
		ManagerID:   mgr.ID,
		BranchName:  mgr.BranchName,
		Bikes:       models.BikeLines{{BikeTypeID: 1, Quantity: 2}},
		Status:      models.OrderPending,
	}
	require.NoError(t, st.CreateOrder(ctx, o))

	require.NoError(t, st.UpdateOrderStatus(ctx, o.ID, models.OrderInProgress))
	got, err := st.OrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderInProgress, got.Status)
	assert.Nil(t, got.CompletedAt)

	require.NoError(t, st.UpdateOrderStatus(ctx, o.ID, models.OrderCompleted))
	got, err = st.OrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, time.Now(), *got.CompletedAt, 5*time.Second)
}

func TestOrdersNewestFirst(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	mgr := seedUser(t, st, models.RoleManager)

	for i, num := range []string{"ORD-20260301-0001", "ORD-20260301-0002"} {
		o := &models.Order{
			OrderNumber: num,
			ManagerID:   mgr.ID,
			BranchName:  mgr.BranchName,
			Status:      models.OrderPending,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, st.CreateOrder(ctx, o))
	}

	orders, err := st.OrdersByManager(ctx, mgr.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-20260301-0002", orders[0].OrderNumber)
}

func TestOrderItemProgress(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	it := &models.OrderItem{OrderID: 1, BikeTypeID: 1, Quantity: 2}
	require.NoError(t, st.CreateOrderItem(ctx, it))

	require.NoError(t, st.UpdateOrderItemProgress(ctx, it.ID, 1, models.StringList{"A1"}))

	got, err := st.OrderItemByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedQuantity)
	assert.Equal(t, models.StringList{"A1"}, got.Barcodes)
}

func TestNotificationsByRecipient(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	mgr := seedUser(t, st, models.RoleManager)
	other := seedUser(t, st, models.RoleMechanic)

	for _, n := range []*models.Notification{
		{RecipientID: mgr.ID, Type: models.NotifOrderCompleted, Title: "Commande complétée", Body: "x"},
		{RecipientID: other.ID, Type: models.NotifOrderCreated, Title: "Nouvelle commande", Body: "y"},
	} {
		require.NoError(t, st.CreateNotification(ctx, n))
	}

	mine, err := st.NotificationsByRecipient(ctx, mgr.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Commande complétée", mine[0].Title)

	unread, err := st.UnreadNotifications(ctx, mgr.ID)
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	require.NoError(t, st.MarkNotificationRead(ctx, mine[0].ID))
	unread, err = st.UnreadNotifications(ctx, mgr.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestPushSubscriptionUpsert(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	u := seedUser(t, st, models.RoleManager)

	sub := &models.PushSubscription{UserID: u.ID, Endpoint: "https://push.example/ep1", P256dh: "k1", Auth: "a1"}
	require.NoError(t, st.SavePushSubscription(ctx, sub))

	// resubscribing the same endpoint refreshes keys instead of duplicating
	again := &models.PushSubscription{UserID: u.ID, Endpoint: "https://push.example/ep1", P256dh: "k2", Auth: "a2"}
	require.NoError(t, st.SavePushSubscription(ctx, again))

	subs, err := st.PushSubscriptionsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "k2", subs[0].P256dh)

	require.NoError(t, st.RemovePushSubscription(ctx, u.ID, "https://push.example/ep1"))
	subs, err = st.PushSubscriptionsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSessionRevocation(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	u := seedUser(t, st, models.RoleManager)

	sess := &models.Session{JTI: "jti-1", UserID: u.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, st.CreateSession(ctx, sess))
	require.NoError(t, st.RevokeSession(ctx, "jti-1"))

	var got models.Session
	require.NoError(t, st.db.First(&got, "jti = ?", "jti-1").Error)
	assert.NotNil(t, got.RevokedAt)
}

func TestNilHandleDegrades(t *testing.T) {
	st := New(nil)
	ctx := context.Background()

	orders, err := st.Orders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	u, err := st.UserByID(ctx, "any")
	require.NoError(t, err)
	assert.Nil(t, u)

	err = st.CreateOrder(ctx, &models.Order{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
