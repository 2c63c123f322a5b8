package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bannerdomain "github.com/garasindo/sparepart-service/internal/app/banner/domain"
	cartdomain "github.com/garasindo/sparepart-service/internal/app/cart/domain"
	catalogdomain "github.com/garasindo/sparepart-service/internal/app/catalog/domain"
	orderdomain "github.com/garasindo/sparepart-service/internal/app/order/domain"
)

func TestMapDomainErrorToGRPC(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"nil passes through", nil, codes.OK},
		{"product not found", catalogdomain.ErrProductNotFound, codes.NotFound},
		{"order not found", orderdomain.ErrOrderNotFound, codes.NotFound},
		{"banner not found", bannerdomain.ErrBannerNotFound, codes.NotFound},
		{"empty cart is a caller fault", orderdomain.ErrEmptyCart, codes.InvalidArgument},
		{"unknown courier", orderdomain.ErrUnknownCourier, codes.InvalidArgument},
		{"invalid percentage", catalogdomain.ErrInvalidPercentage, codes.InvalidArgument},
		{"quantity limit", cartdomain.ErrQuantityLimitExceeded, codes.InvalidArgument},
		{"slug taken", catalogdomain.ErrSlugTaken, codes.AlreadyExists},
		{"product unavailable", cartdomain.ErrProductUnavailable, codes.FailedPrecondition},
		{"illegal status change", orderdomain.ErrIllegalStatusChange, codes.FailedPrecondition},
		{"order number exhausted", orderdomain.ErrOrderNumberExhausted, codes.Aborted},
		{"unexpected error stays opaque", errors.New("spanner session expired"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapDomainErrorToGRPC(tt.err)
			if tt.err == nil {
				assert.NoError(t, mapped)
				return
			}

			st, ok := status.FromError(mapped)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
		})
	}
}

func TestMapDomainErrorToGRPCUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("place order: %w", orderdomain.ErrEmptyCart)

	st, ok := status.FromError(mapDomainErrorToGRPC(wrapped))
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestMapInsufficientStockCarriesDetail(t *testing.T) {
	err := &catalogdomain.InsufficientStockError{Name: "Busi NGK", Requested: 3, Available: 1}

	st, ok := status.FromError(mapDomainErrorToGRPC(err))
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "Busi NGK")
	assert.Contains(t, st.Message(), "requested 3")
}
