package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tvnguyen/famledger/backend/internal/model"
	"github.com/tvnguyen/famledger/backend/internal/store"
)

func seedPersonalFamily(t *testing.T, st *store.MemoryStore) {
	t.Helper()
	st.AddFamily(&model.Family{ID: "fam1", OwnerID: "owner1", Currency: "VND"})
	st.AddFamilyMember(memberWithRole("fam1", "owner1", model.RoleOwner))
	st.AddFamilyMember(memberWithRole("fam1", "admin1", model.RoleAdmin))
	st.AddFamilyMember(memberWithRole("fam1", "user1", model.RoleMember))
	st.AddFamilyMember(memberWithRole("fam1", "user2", model.RoleMember))
}

func TestCreatePersonalBudgetSelf(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	pb, err := svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID:          "user1",
		Category:        "Cà phê",
		AllocatedAmount: 300_000,
		Year:            2026,
		Month:           8,
	})
	require.NoError(t, err)
	assert.Equal(t, "user1", pb.UserID)
	assert.Equal(t, model.PeriodMonthly, pb.Period)
	assert.True(t, pb.IsActive)
}

func TestCreatePersonalBudgetForOtherMemberDenied(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)

	// A plain member cannot manage another member's budgets.
	_, err := svc.CreatePersonalBudget(context.Background(), "fam1", "user1", CreatePersonalBudgetInput{
		UserID:          "user2",
		Category:        "Cà phê",
		AllocatedAmount: 300_000,
	})
	require.Error(t, err)
	assert.Equal(t, CodePermissionDenied, CodeOf(err))
}

func TestCreatePersonalBudgetAsAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)

	pb, err := svc.CreatePersonalBudget(context.Background(), "fam1", "admin1", CreatePersonalBudgetInput{
		UserID:          "user2",
		Category:        "Xăng xe",
		AllocatedAmount: 500_000,
		Year:            2026,
		Month:           8,
	})
	require.NoError(t, err)
	assert.Equal(t, "user2", pb.UserID)
	assert.Equal(t, "admin1", pb.CreatedBy)
}

func TestUpdatePersonalBudgetFamilyMismatch(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	st.AddFamily(&model.Family{ID: "fam2", OwnerID: "owner2"})
	st.AddFamilyMember(memberWithRole("fam2", "owner2", model.RoleOwner))
	svc := NewBudgetService(st)
	ctx := context.Background()

	pb, err := svc.CreatePersonalBudget(ctx, "fam2", "owner2", CreatePersonalBudgetInput{
		UserID:          "owner2",
		Category:        "Sách",
		AllocatedAmount: 200_000,
		Year:            2026,
		Month:           8,
	})
	require.NoError(t, err)

	// Addressing a fam2 budget through fam1 is a mismatch, not a not-found.
	amount := 250_000.0
	_, err = svc.UpdatePersonalBudget(ctx, "fam1", pb.ID, "owner1", UpdatePersonalBudgetInput{AllocatedAmount: &amount})
	require.Error(t, err)
	assert.Equal(t, CodeFamilyMismatch, CodeOf(err))
}

func TestDeletePersonalBudgetByAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	pb, err := svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID:          "user1",
		Category:        "Cà phê",
		AllocatedAmount: 300_000,
		Year:            2026,
		Month:           8,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePersonalBudget(ctx, "fam1", pb.ID, "admin1"))

	_, err = st.GetPersonalBudget(ctx, pb.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListPersonalBudgetsScopedToPeriod(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	for _, month := range []int{7, 8} {
		_, err := svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
			UserID:          "user1",
			Category:        "Cà phê",
			AllocatedAmount: 300_000,
			Year:            2026,
			Month:           month,
		})
		require.NoError(t, err)
	}

	budgets, err := svc.ListPersonalBudgets(ctx, "fam1", "user1", "user1", 2026, 8)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 8, budgets[0].Month)
}

func TestPersonalBudgetMutationsRejectUnauthenticatedWithoutReads(t *testing.T) {
	// No expectations: an anonymous caller must be turned away before the
	// service touches the store at all.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	svc := NewBudgetService(mockStore)
	ctx := context.Background()

	_, err := svc.CreatePersonalBudget(ctx, "fam1", "", CreatePersonalBudgetInput{
		UserID: "user1", Category: "Cà phê", AllocatedAmount: 300_000,
	})
	assert.Equal(t, CodeUnauthenticated, CodeOf(err))

	amount := 250_000.0
	_, err = svc.UpdatePersonalBudget(ctx, "fam1", "pb1", "", UpdatePersonalBudgetInput{AllocatedAmount: &amount})
	assert.Equal(t, CodeUnauthenticated, CodeOf(err))

	err = svc.DeletePersonalBudget(ctx, "fam1", "pb1", "")
	assert.Equal(t, CodeUnauthenticated, CodeOf(err))

	_, err = svc.GetPersonalBudgetDetail(ctx, "fam1", "pb1", "")
	assert.Equal(t, CodeUnauthenticated, CodeOf(err))
}

func TestCreatePersonalBudgetEmptyUserIDInvalid(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)

	// An empty target is a malformed request, not a permission problem.
	_, err := svc.CreatePersonalBudget(context.Background(), "fam1", "user1", CreatePersonalBudgetInput{
		Category:        "Cà phê",
		AllocatedAmount: 300_000,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestCreatePersonalBudgetPartialPeriodRejected(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	// Year without month would land in month zero of that year.
	_, err := svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID: "user1", Category: "Cà phê", AllocatedAmount: 300_000,
		Year: 2026,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))

	// Month without year would otherwise be discarded by the defaults.
	_, err = svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID: "user1", Category: "Cà phê", AllocatedAmount: 300_000,
		Month: 8,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))

	_, err = svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID: "user1", Category: "Cà phê", AllocatedAmount: 300_000,
		Year: 2026, Month: 13,
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestGetPersonalBudgetDetailDerivesSpend(t *testing.T) {
	st := store.NewMemoryStore()
	seedPersonalFamily(t, st)
	svc := NewBudgetService(st)
	ctx := context.Background()

	pb, err := svc.CreatePersonalBudget(ctx, "fam1", "user1", CreatePersonalBudgetInput{
		UserID:          "user1",
		Category:        "Cà phê",
		AllocatedAmount: 300_000,
		Year:            2026,
		Month:           8,
	})
	require.NoError(t, err)

	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user1",
		Category: "Cà phê", Type: model.TransactionExpense,
		Amount: 90_000, Date: time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC),
	})
	// Another member's coffee spend stays out of user1's personal budget.
	st.AddTransaction(&model.Transaction{
		FamilyID: "fam1", UserID: "user2",
		Category: "Cà phê", Type: model.TransactionExpense,
		Amount: 500_000, Date: time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC),
	})

	detail, err := svc.GetPersonalBudgetDetail(ctx, "fam1", pb.ID, "user1")
	require.NoError(t, err)
	assert.Equal(t, 90_000.0, detail.SpentAmount)
	assert.Equal(t, 210_000.0, detail.RemainingAmount)
	assert.InDelta(t, 30.0, detail.PercentageUsed, 0.001)
}
