package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velodesk/internal/auth"
	"velodesk/internal/models"
)

func TestCreateAccount(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, st, models.RoleAdmin, "HQ")
	mgr := seedUser(t, st, models.RoleManager, "Branch A")

	_, err := svc.CreateAccount(ctx, asCaller(mgr), CreateAccountInput{
		Email: "new@velodesk.test", Password: "pw", Role: models.RoleManager,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateAccount(ctx, asCaller(admin), CreateAccountInput{
		Email: "", Password: "pw", Role: models.RoleManager,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateAccount(ctx, asCaller(admin), CreateAccountInput{
		Email: "new@velodesk.test", Password: "pw", Role: "janitor",
	})
	assert.ErrorIs(t, err, ErrValidation)

	u, err := svc.CreateAccount(ctx, asCaller(admin), CreateAccountInput{
		Email:      "  New@Velodesk.Test ",
		Password:   "pw",
		Name:       "New Manager",
		Role:       models.RoleManager,
		BranchName: "Branch C",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@velodesk.test", u.Email)
	assert.True(t, u.IsActive)
	assert.NoError(t, auth.CheckPassword(u.PasswordHash, "pw"))
}

func TestUpdateAccount(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, st, models.RoleAdmin, "HQ")
	mgr := seedUser(t, st, models.RoleManager, "Branch A")

	name := "Renamed"
	inactive := false
	pw := "newpw"
	u, err := svc.UpdateAccount(ctx, asCaller(admin), mgr.ID, UpdateAccountInput{
		Name: &name, IsActive: &inactive, Password: &pw,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.False(t, u.IsActive)
	assert.NoError(t, auth.CheckPassword(u.PasswordHash, "newpw"))
	// untouched fields keep their values
	assert.Equal(t, "Branch A", u.BranchName)

	_, err = svc.UpdateAccount(ctx, asCaller(admin), "00000000-0000-0000-0000-000000000000", UpdateAccountInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateAccount(ctx, asCaller(mgr), mgr.ID, UpdateAccountInput{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMeAndManagers(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	admin := seedUser(t, st, models.RoleAdmin, "HQ")
	mgr := seedUser(t, st, models.RoleManager, "Branch A")

	me, err := svc.Me(ctx, asCaller(mgr))
	require.NoError(t, err)
	assert.Equal(t, mgr.ID, me.ID)

	_, err = svc.Me(ctx, Caller{})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Managers(ctx, asCaller(mgr))
	assert.ErrorIs(t, err, ErrForbidden)

	ms, err := svc.Managers(ctx, asCaller(admin))
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, mgr.ID, ms[0].ID)
}

func TestPushSubscriptionLifecycle(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	mgr := seedUser(t, st, models.RoleManager, "Branch A")

	err := svc.Subscribe(ctx, asCaller(mgr), SubscribeInput{Endpoint: "https://push.example/ep"})
	assert.ErrorIs(t, err, ErrValidation)

	in := SubscribeInput{
		Endpoint: "https://push.example/ep",
		Keys:     PushKeys{P256dh: "k1", Auth: "a1"},
	}
	require.NoError(t, svc.Subscribe(ctx, asCaller(mgr), in))

	in.Keys.P256dh = "k2"
	require.NoError(t, svc.Subscribe(ctx, asCaller(mgr), in))

	subs, err := st.PushSubscriptionsByUser(ctx, mgr.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "k2", subs[0].P256dh)

	err = svc.Unsubscribe(ctx, asCaller(mgr), "")
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Unsubscribe(ctx, asCaller(mgr), in.Endpoint))
	subs, err = st.PushSubscriptionsByUser(ctx, mgr.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
