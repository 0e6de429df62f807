package billing_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citycab/taxi-dispatch/internal/billing"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/test/mocks"
)

func ptr(f float64) *float64 { return &f }

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestGetBill(t *testing.T) {
	bookingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("GetBill", mock.Anything, bookingID).Return(&billing.Bill{BookingID: bookingID, TotalAmount: 950}, nil)
		svc := billing.NewService(repo)

		bill, err := svc.GetBill(context.Background(), bookingID)

		require.NoError(t, err)
		assert.Equal(t, 950.0, bill.TotalAmount)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("GetBill", mock.Anything, bookingID).Return(nil, billing.ErrNotFound)
		svc := billing.NewService(repo)

		_, err := svc.GetBill(context.Background(), bookingID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestUpdateBill(t *testing.T) {
	bookingID := uuid.New()

	tests := []struct {
		name      string
		req       *billing.UpdateBillRequest
		wantTotal float64
	}{
		{
			name: "total derived from the four components",
			req: &billing.UpdateBillRequest{
				BaseFare:          ptr(1000),
				WaitingTimeCharge: ptr(100),
				Taxes:             ptr(50),
				Discount:          ptr(200),
			},
			wantTotal: 950,
		},
		{
			name: "editing only the discount still recomputes",
			req: &billing.UpdateBillRequest{
				BaseFare:          ptr(1000),
				WaitingTimeCharge: ptr(0),
				Taxes:             ptr(50),
				Discount:          ptr(500),
			},
			wantTotal: 550,
		},
		{
			name: "all zeros",
			req: &billing.UpdateBillRequest{
				BaseFare:          ptr(0),
				WaitingTimeCharge: ptr(0),
				Taxes:             ptr(0),
				Discount:          ptr(0),
			},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBillingRepository)
			repo.On("UpdateBill", mock.Anything, mock.AnythingOfType("*billing.Bill")).Return(nil)
			svc := billing.NewService(repo)

			bill, err := svc.UpdateBill(context.Background(), bookingID, tt.req)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, bill.TotalAmount, 1e-9)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateBillMissing(t *testing.T) {
	repo := new(mocks.MockBillingRepository)
	repo.On("UpdateBill", mock.Anything, mock.Anything).Return(billing.ErrNotFound)
	svc := billing.NewService(repo)

	_, err := svc.UpdateBill(context.Background(), uuid.New(), &billing.UpdateBillRequest{
		BaseFare:          ptr(100),
		WaitingTimeCharge: ptr(0),
		Taxes:             ptr(0),
		Discount:          ptr(0),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
}

func TestRenderInvoice(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	record := &billing.BillWithTrip{
		Bill: billing.Bill{
			BookingID:   bookingID,
			BaseFare:    1000,
			Taxes:       50,
			Discount:    100,
			TotalAmount: 950,
		},
		DriverName:    "Kasun Perera",
		StartLocation: "Fort",
		EndLocation:   "Galle Face",
		Distance:      10,
	}

	t.Run("owner downloads own invoice", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("BookingOwner", mock.Anything, bookingID).Return(ownerID, nil)
		repo.On("GetBillWithTrip", mock.Anything, bookingID).Return(record, nil)
		svc := billing.NewService(repo)

		filename, doc, err := svc.RenderInvoice(context.Background(), bookingID, ownerID, "customer")

		require.NoError(t, err)
		assert.Equal(t, "booking-invoice-"+bookingID.String()+".pdf", filename)
		assert.Contains(t, string(doc), "Cab Booking Invoice")
		assert.Contains(t, string(doc), "Kasun Perera")
		assert.Contains(t, string(doc), "950.00")
	})

	t.Run("admin skips the ownership check", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("GetBillWithTrip", mock.Anything, bookingID).Return(record, nil)
		svc := billing.NewService(repo)

		_, _, err := svc.RenderInvoice(context.Background(), bookingID, strangerID, "admin")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "BookingOwner", mock.Anything, mock.Anything)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("BookingOwner", mock.Anything, bookingID).Return(ownerID, nil)
		svc := billing.NewService(repo)

		_, _, err := svc.RenderInvoice(context.Background(), bookingID, strangerID, "customer")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		repo.AssertNotCalled(t, "GetBillWithTrip", mock.Anything, mock.Anything)
	})

	t.Run("missing bill", func(t *testing.T) {
		repo := new(mocks.MockBillingRepository)
		repo.On("GetBillWithTrip", mock.Anything, bookingID).Return(nil, billing.ErrNotFound)
		svc := billing.NewService(repo)

		_, _, err := svc.RenderInvoice(context.Background(), bookingID, ownerID, "admin")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}
